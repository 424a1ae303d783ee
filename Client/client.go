package Client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"sync/atomic"
	"time"
)

// Client is the typed API surface of the diagnosis server. Every method
// returns decoded structs or one of the package's error types; callers never
// see raw responses.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    *SessionStore

	submitting atomic.Bool
}

func New(baseURL string, store Store) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		Session:    NewSessionStore(store),
	}
}

// Login exchanges credentials for a token and begins the session. On any
// failure no session state is written.
func (c *Client) Login(email, password string) (TokenResponse, error) {
	payload := map[string]string{"email": email, "password": password}

	var token TokenResponse
	if err := c.postJSON("/api/auth/login", payload, &token, "Login failed"); err != nil {
		return TokenResponse{}, err
	}
	if err := c.Session.Begin(token); err != nil {
		return TokenResponse{}, err
	}
	return token, nil
}

// Register validates the profile locally first so rule violations, a short
// password included, never reach the network.
func (c *Client) Register(profile RegisterProfile) (TokenResponse, error) {
	if err := ValidateProfile(profile); err != nil {
		return TokenResponse{}, err
	}

	var token TokenResponse
	if err := c.postJSON("/api/auth/register", profile, &token, "Registration failed"); err != nil {
		return TokenResponse{}, err
	}
	if err := c.Session.Begin(token); err != nil {
		return TokenResponse{}, err
	}
	return token, nil
}

// Logout revokes the token server-side and clears the session. The session
// is cleared even when revocation fails; a dead server must not trap the
// user in a signed-in state.
func (c *Client) Logout() error {
	req, err := c.newRequest(http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		c.Session.Clear()
		return err
	}

	resp, err := c.HTTPClient.Do(req)
	c.Session.Clear()
	if err != nil {
		return &NetError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp, "Logout failed")
	}
	return nil
}

// Analyze submits the form. Only one submission may be in flight; a second
// call while the first is pending returns ErrSubmitInFlight immediately. The
// guard is always released, success or failure.
func (c *Client) Analyze(form *AnalysisForm) (AnalysisResult, error) {
	if err := form.Validate(); err != nil {
		return AnalysisResult{}, err
	}

	if !c.submitting.CompareAndSwap(false, true) {
		return AnalysisResult{}, ErrSubmitInFlight
	}
	defer c.submitting.Store(false)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := form.WriteMultipart(writer); err != nil {
		return AnalysisResult{}, err
	}
	if err := writer.Close(); err != nil {
		return AnalysisResult{}, err
	}

	req, err := c.newRequest(http.MethodPost, "/api/analyze", &body)
	if err != nil {
		return AnalysisResult{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return AnalysisResult{}, &NetError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AnalysisResult{}, decodeAPIError(resp, "Analysis failed")
	}

	var result AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return AnalysisResult{}, &SchemaError{Endpoint: "/api/analyze", Err: err}
	}
	return result, nil
}

// Records fetches every analysis visible to the signed-in doctor.
func (c *Client) Records() ([]Record, error) {
	var payload RecordsResponse
	if err := c.getJSON("/api/records", &payload, "Failed to load records"); err != nil {
		return nil, err
	}
	return payload.Records, nil
}

// Record fetches the full detail of one analysis.
func (c *Client) Record(analysisID uint) (RecordDetail, error) {
	var detail RecordDetail
	path := fmt.Sprintf("/api/records/%d", analysisID)
	if err := c.getJSON(path, &detail, "Failed to load record"); err != nil {
		return RecordDetail{}, err
	}
	return detail, nil
}

// Stats fetches the dashboard counters.
func (c *Client) Stats() (Stats, error) {
	var stats Stats
	if err := c.getJSON("/api/stats", &stats, "Failed to load statistics"); err != nil {
		return Stats{}, err
	}
	return stats, nil
}

// GradcamImage fetches the heatmap overlay bytes for an analysis.
func (c *Client) GradcamImage(analysisID uint) ([]byte, error) {
	path := fmt.Sprintf("/api/image/gradcam/%d", analysisID)
	return c.getBytes(path, "Image not found")
}

// OriginalImage fetches the uploaded X-ray bytes for an analysis.
func (c *Client) OriginalImage(analysisID uint) ([]byte, error) {
	path := fmt.Sprintf("/api/image/original/%d", analysisID)
	return c.getBytes(path, "Image not found")
}

// DownloadReport fetches the PDF report for an analysis. The filename is
// derived from the analysis id, regardless of what the server calls the
// file on disk.
func (c *Client) DownloadReport(analysisID uint) (ReportDownload, error) {
	path := fmt.Sprintf("/api/download/report/%d", analysisID)
	data, err := c.getBytes(path, "Report not found")
	if err != nil {
		return ReportDownload{}, err
	}
	return ReportDownload{
		Filename: fmt.Sprintf("medical_report_%d.pdf", analysisID),
		Data:     data,
	}, nil
}

// ExportRecords fetches the spreadsheet export of every record.
func (c *Client) ExportRecords() (ReportDownload, error) {
	req, err := c.newRequest(http.MethodGet, "/api/export/records", nil)
	if err != nil {
		return ReportDownload{}, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return ReportDownload{}, &NetError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ReportDownload{}, decodeAPIError(resp, "Export failed")
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ReportDownload{}, &NetError{Err: err}
	}

	filename := "records.xlsx"
	if disposition := resp.Header.Get("Content-Disposition"); disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil && params["filename"] != "" {
			filename = params["filename"]
		}
	}
	return ReportDownload{Filename: filename, Data: data}, nil
}

func (c *Client) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if token := c.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) getJSON(path string, out any, fallback string) error {
	req, err := c.newRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, path, out, fallback)
}

func (c *Client) postJSON(path string, payload any, out any, fallback string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := c.newRequest(http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, path, out, fallback)
}

func (c *Client) doJSON(req *http.Request, path string, out any, fallback string) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return &NetError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeAPIError(resp, fallback)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &SchemaError{Endpoint: path, Err: err}
	}
	return nil
}

func (c *Client) getBytes(path, fallback string) ([]byte, error) {
	req, err := c.newRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &NetError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp, fallback)
	}
	return io.ReadAll(resp.Body)
}
