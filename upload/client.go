// Package upload implements the three-step Crittercism symbol-upload
// protocol: create a file resource, fill it with the archive bytes, then
// register a processing job for the uploaded file.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/danielmtavares/crittercism-tools/config"
	"github.com/danielmtavares/crittercism-tools/logging"
)

// Multipart form contract for the fill request.
const (
	formName     = "name"
	formNameVal  = "symbolUpload"
	formFiledata = "filedata"
)

// A FileResource is the server's record of an upload slot, returned when the
// slot is created. ID and StorageKey are the only fields the client acts on;
// the rest is pass-through metadata.
type FileResource struct {
	ID         string `json:"resource-id"`
	StorageKey string `json:"storage-key"`
	Status     string `json:"status,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// An UploadJob describes the processing job the server registered for an
// uploaded archive.
type UploadJob struct {
	CompletionStatus string `json:"completionStatus"`
	UploadUUID       string `json:"uploadUuid"`
	Filename         string `json:"filename"`
}

// A Client talks to the symbol-processing API on behalf of one application.
type Client struct {
	token    string
	appID    string
	filesURL string
	appURL   string
	hc       *http.Client
	log      *zap.SugaredLogger
}

// New builds a Client from cfg. It verifies that both endpoint base URLs are
// usable before any network call; a bad endpoint is a DependencyError.
func New(cfg config.Config) (*Client, error) {
	for _, base := range []string{cfg.FilesURL, cfg.AppURL} {
		u, err := url.Parse(base)
		if err != nil {
			return nil, &DependencyError{Reason: "bad endpoint " + base, Err: err}
		}
		if !u.IsAbs() || u.Scheme != "http" && u.Scheme != "https" {
			return nil, &DependencyError{Reason: "endpoint " + base + " is not an absolute http(s) URL"}
		}
	}
	return &Client{
		token:    cfg.Token,
		appID:    cfg.AppID,
		filesURL: strings.TrimRight(cfg.FilesURL, "/"),
		appURL:   strings.TrimRight(cfg.AppURL, "/"),
		hc:       &http.Client{Timeout: cfg.Timeout},
		log:      logging.Logger("upload"),
	}, nil
}

// Upload runs the three protocol steps strictly in order and returns the
// registered job. The first failing step aborts the run; server-side state
// from earlier steps is left as is.
func (c *Client) Upload(ctx context.Context, path string) (*UploadJob, error) {
	res, err := c.CreateFileResource(ctx)
	if err != nil {
		return nil, err
	}
	c.log.Infow("file resource created", "resource", res.ID, "key", res.StorageKey)

	if err := c.FillFileResource(ctx, res, path); err != nil {
		return nil, err
	}
	c.log.Infow("file resource filled", "file", path)

	job, err := c.CreateSymbolUploadJob(ctx, res, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	c.log.Infow("symbol upload job created", "status", job.CompletionStatus)
	return job, nil
}

// CreateFileResource asks the server for a fresh upload slot. The returned
// record is required by both later steps.
func (c *Client) CreateFileResource(ctx context.Context) (FileResource, error) {
	u := fmt.Sprintf("%s/applications/%s/symbol-uploads", c.filesURL, c.appID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return FileResource{}, errors.Wrap(err, stepCreate)
	}
	c.authorize(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return FileResource{}, errors.Wrap(err, stepCreate)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return FileResource{}, errors.Wrap(err, stepCreate)
	}
	if !success(resp.StatusCode) {
		return FileResource{}, &UploadError{Step: stepCreate, Status: resp.StatusCode, Body: string(body)}
	}

	var res FileResource
	if err := json.Unmarshal(body, &res); err != nil {
		return FileResource{}, &ProtocolError{Step: stepCreate, Err: err}
	}
	if res.ID == "" {
		return FileResource{}, &ProtocolError{Step: stepCreate, Missing: "resource-id"}
	}
	if res.StorageKey == "" {
		return FileResource{}, &ProtocolError{Step: stepCreate, Missing: "storage-key"}
	}
	return res, nil
}

// FillFileResource streams the archive at path into the slot named by
// res.StorageKey. The file is closed on every exit path.
func (c *Client) FillFileResource(ctx context.Context, res FileResource, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField(formName, formNameVal); err != nil {
		return errors.Wrap(err, stepFill)
	}
	part, err := w.CreateFormFile(formFiledata, filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, stepFill)
	}
	if _, err := io.Copy(part, f); err != nil {
		return &FileError{Path: path, Err: err}
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, stepFill)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.filesURL+"/"+res.StorageKey, &buf)
	if err != nil {
		return errors.Wrap(err, stepFill)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.authorize(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return errors.Wrap(err, stepFill)
	}
	defer resp.Body.Close()

	if !success(resp.StatusCode) {
		body, _ := io.ReadAll(resp.Body)
		return &UploadError{Step: stepFill, Status: resp.StatusCode, Body: string(body)}
	}
	return nil
}

// CreateSymbolUploadJob registers a processing job for the filled resource.
func (c *Client) CreateSymbolUploadJob(ctx context.Context, res FileResource, filename string) (*UploadJob, error) {
	payload, err := json.Marshal(struct {
		UploadUUID string `json:"uploadUuid"`
		Filename   string `json:"filename"`
	}{res.ID, filename})
	if err != nil {
		return nil, errors.Wrap(err, stepJob)
	}

	u := fmt.Sprintf("%s/app/%s/symbols/uploads", c.appURL, c.appID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, stepJob)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, stepJob)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, stepJob)
	}
	if !success(resp.StatusCode) {
		return nil, &UploadError{Step: stepJob, Status: resp.StatusCode, Body: string(body)}
	}

	var job UploadJob
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, &ProtocolError{Step: stepJob, Err: err}
	}
	return &job, nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
}

func success(code int) bool {
	return code/100 == 2
}
