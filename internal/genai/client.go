// Package genai integrates with the Google Gemini generateContent API to
// render replacement flooring into a room photo.
package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"nanofloor/internal/domain"
	"nanofloor/internal/infra"
)

// Image generation is slow; a single call can legitimately run for minutes.
const defaultTimeout = 120 * time.Second

// rawBodyExcerptLen bounds how much of an unparseable response body is quoted
// back in diagnostics.
const rawBodyExcerptLen = 500

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
	Logger     *infra.Logger
	Debug      bool
}

// Client calls the Gemini API and normalizes its heterogeneous responses into
// a Result or a tagged Error. It performs no retries; a failed call is
// surfaced directly so the user can resubmit.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *infra.Logger
	debug      bool
}

// NewClient constructs a Gemini client. A nil HTTP client gets a reusable one
// with the generous rendering timeout.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      opts.Model,
		httpClient: httpClient,
		logger:     logger,
		debug:      opts.Debug,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
	FileData   *geminiFileData   `json:"fileData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiFileData struct {
	MimeType string `json:"mimeType,omitempty"`
	FileURI  string `json:"fileUri,omitempty"`
}

type geminiGenerateContentRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates     []geminiCandidate     `json:"candidates"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
	Error          *geminiErrorDetail    `json:"error,omitempty"`
}

type geminiErrorDetail struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// RenderFloor sends the room image, the optional reference swatch, and the
// composed prompt to the model and returns the first image it produced. The
// room image is always the last content part so the model aligns the output
// dimensions to it.
func (c *Client) RenderFloor(ctx context.Context, room domain.ValidatedImage, sel domain.Selection, reference *domain.ValidatedImage, width, height int) (*Result, error) {
	if c.apiKey == "" {
		return nil, &Error{Kind: ErrorKindConfig, Model: c.model, Detail: "Gemini API key missing. Add it under Settings."}
	}
	if c.model == "" {
		return nil, &Error{Kind: ErrorKindConfig, Detail: "Gemini image model is not configured."}
	}

	prompt := BuildPrompt(sel, reference != nil, width, height)

	parts := []geminiPart{{Text: prompt}}
	if reference != nil {
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: reference.MIMEType,
			Data:     base64.StdEncoding.EncodeToString(reference.Bytes),
		}})
	}
	parts = append(parts, geminiPart{InlineData: &geminiInlineData{
		MimeType: room.MIMEType,
		Data:     base64.StdEncoding.EncodeToString(room.Bytes),
	}})

	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
	}

	raw, status, err := c.invoke(ctx, payload)
	if err != nil {
		return nil, c.errorf(ErrorKindTransport, "%v", err)
	}
	if status >= http.StatusBadRequest {
		return nil, c.errorf(ErrorKindHTTP, "HTTP %d: %s", status, strings.TrimSpace(string(raw)))
	}

	return c.parseResponse(raw)
}

func (c *Client) invoke(ctx context.Context, payload geminiGenerateContentRequest) ([]byte, int, error) {
	endpoint := c.modelEndpoint()
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	q := req.URL.Query()
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")

	if c.debug {
		c.logger.Debug().Str("model", c.model).Str("endpoint", endpoint).Msg("genai: rendering request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.debug {
			c.logger.Debug().Err(err).Str("model", c.model).Msg("genai: transport failure")
		}
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}

	if c.debug {
		event := c.logger.Debug().Str("model", c.model).Int("status", resp.StatusCode)
		if resp.StatusCode >= http.StatusBadRequest {
			event = event.Str("body", excerpt(raw))
		}
		event.Msg("genai: rendering response")
	}

	return raw, resp.StatusCode, nil
}

// parseResponse walks candidate -> content -> parts and returns the first part
// holding inline image data or a remote file reference. Unparseable, empty,
// and policy-blocked responses each yield a distinct tagged error.
func (c *Client) parseResponse(raw []byte) (*Result, error) {
	var parsed geminiGenerateContentResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, c.errorf(ErrorKindMalformed, "Malformed API response: %s", excerpt(raw))
	}

	for _, candidate := range parsed.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return &Result{
					MIMEType:   defaultMIME(part.InlineData.MimeType),
					Base64Data: part.InlineData.Data,
				}, nil
			}
			if part.FileData != nil && part.FileData.FileURI != "" {
				return &Result{
					MIMEType:  defaultMIME(part.FileData.MimeType),
					RemoteURL: part.FileData.FileURI,
				}, nil
			}
		}
	}

	if parsed.PromptFeedback != nil && parsed.PromptFeedback.BlockReason != "" {
		return nil, c.errorf(ErrorKindBlocked, "Gemini blocked request: %s", parsed.PromptFeedback.BlockReason)
	}
	if parsed.Error != nil && parsed.Error.Message != "" {
		return nil, c.errorf(ErrorKindHTTP, "API Error: %s", parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 {
		return nil, c.errorf(ErrorKindEmpty, "API returned no candidates. Response: %s", excerpt(raw))
	}
	return nil, c.errorf(ErrorKindNoImage, "No image returned")
}

func (c *Client) modelEndpoint() string {
	if strings.HasPrefix(c.model, "models/") {
		return c.baseURL + "/" + c.model + ":generateContent"
	}
	return c.baseURL + "/models/" + url.PathEscape(c.model) + ":generateContent"
}

func defaultMIME(mime string) string {
	if mime == "" {
		return "image/png"
	}
	return mime
}

func excerpt(raw []byte) string {
	s := string(raw)
	if len(s) > rawBodyExcerptLen {
		return s[:rawBodyExcerptLen]
	}
	return s
}
