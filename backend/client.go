//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=../mocks/mock_backend.go -package=mocks
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"neuroview/domain"
	"neuroview/errors"
)

// Upload is one file handed to the prediction endpoint.
type Upload struct {
	Filename string
	Data     []byte
}

// Credentials is what a successful login returns.
type Credentials struct {
	AccessToken string
	TokenType   string
}

// Client is the typed surface of the external prediction API. Every failure
// is terminal for that call; no method retries.
type Client interface {
	Predict(ctx context.Context, token string, up Upload, progress func(percent int)) (*domain.PredictionResponse, error)
	Chat(ctx context.Context, req domain.ChatRequest) (domain.ChatReply, error)
	Login(ctx context.Context, email, password string) (Credentials, error)
	Register(ctx context.Context, name, email, password string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, otpCode, newPassword string) error
}

type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, log *slog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Predict uploads the image as multipart field "file" and reports transfer
// progress as a monotone 0-100 percentage. No partial result is surfaced
// before the response body is fully decoded.
func (c *HTTPClient) Predict(ctx context.Context, token string, up Upload, progress func(percent int)) (*domain.PredictionResponse, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		part, err := form.CreateFormFile("file", up.Filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		body := io.Reader(bytes.NewReader(up.Data))
		if progress != nil {
			body = &progressReader{r: body, total: int64(len(up.Data)), report: progress}
		}
		if _, err = io.Copy(part, body); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/predict", pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Predict transport failure", "err", err)
		return nil, fmt.Errorf("%w: %v", errors.ErrBackendUnreachable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, c.rejection(res)
	}

	var prediction domain.PredictionResponse
	if err = json.NewDecoder(res.Body).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("decoding prediction: %w", err)
	}
	if progress != nil {
		progress(100)
	}
	return &prediction, nil
}

func (c *HTTPClient) Chat(ctx context.Context, chatReq domain.ChatRequest) (domain.ChatReply, error) {
	var reply domain.ChatReply
	if err := c.postJSON(ctx, "/api/chat", chatReq, &reply); err != nil {
		return domain.ChatReply{}, err
	}
	return reply, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (Credentials, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Message     string `json:"message"`
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.postJSON(ctx, "/api/login", body, &out); err != nil {
		return Credentials{}, err
	}
	return Credentials{AccessToken: out.AccessToken, TokenType: out.TokenType}, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.postJSON(ctx, "/api/register", body, nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	return c.postJSON(ctx, "/api/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, otpCode, newPassword string) error {
	body := map[string]string{
		"email":        email,
		"otp_code":     otpCode,
		"new_password": newPassword,
	}
	return c.postJSON(ctx, "/api/auth/reset-password", body, nil)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Transport failure", "path", path, "err", err)
		return fmt.Errorf("%w: %v", errors.ErrBackendUnreachable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		if res.StatusCode == http.StatusUnauthorized {
			return errors.ErrInvalidCredentials
		}
		return c.rejection(res)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// rejection extracts the backend's human-readable detail field when present.
func (c *HTTPClient) rejection(res *http.Response) error {
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(res.Body).Decode(&detail); err == nil && detail.Detail != "" {
		return fmt.Errorf("%w: %s", errors.ErrBackendRejected, detail.Detail)
	}
	return fmt.Errorf("%w: status %d", errors.ErrBackendRejected, res.StatusCode)
}

// progressReader reports whole percentages, never regressing, capped at 99
// until the caller confirms completion.
type progressReader struct {
	r      io.Reader
	total  int64
	sent   int64
	last   int
	report func(int)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.sent += int64(n)
	if p.total > 0 {
		percent := int(p.sent * 100 / p.total)
		if percent > 99 {
			percent = 99
		}
		if percent > p.last {
			p.last = percent
			p.report(percent)
		}
	}
	return n, err
}
