// Package drive talks to the Google Drive v3 API, scoped to the private
// appDataFolder. The dataset lives in a single JSON document located by its
// well-known name; writes always replace the full content.
package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	apperrors "habitly/internal/errors"
)

const (
	defaultAPIURL    = "https://www.googleapis.com/drive/v3"
	defaultUploadURL = "https://www.googleapis.com/upload/drive/v3"
)

// DocumentStore is the storage capability the sync pipeline depends on.
type DocumentStore interface {
	// FindByName returns the id of the document with the given name, or
	// "" when no such document exists.
	FindByName(ctx context.Context, token, name string) (string, error)
	// ReadContent fetches the raw bytes of the document.
	ReadContent(ctx context.Context, token, id string) ([]byte, error)
	// WriteContent replaces the document body, creating the document when
	// id is empty. It returns the document id.
	WriteContent(ctx context.Context, token, id string, body []byte) (string, error)
}

// Client implements DocumentStore against the Drive REST API. Name is the
// document name newly created files are given.
type Client struct {
	APIURL     string
	UploadURL  string
	Name       string
	HTTPClient *http.Client
}

func NewClient(name string) *Client {
	return &Client{
		APIURL:     defaultAPIURL,
		UploadURL:  defaultUploadURL,
		Name:       name,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// escapeQueryLiteral escapes backslashes and single quotes so a document
// name embeds safely in a quoted Drive query term.
func escapeQueryLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

type fileMeta struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fileList struct {
	Files []fileMeta `json:"files"`
}

func (c *Client) FindByName(ctx context.Context, token, name string) (string, error) {
	q := url.Values{
		"spaces": {"appDataFolder"},
		"q":      {fmt.Sprintf("name='%s'", escapeQueryLiteral(name))},
		"fields": {"files(id,name)"},
	}

	body, err := c.do(ctx, token, http.MethodGet, c.APIURL+"/files?"+q.Encode(), "", nil, "find")
	if err != nil {
		return "", err
	}

	var list fileList
	if err := json.Unmarshal(body, &list); err != nil {
		return "", &apperrors.DataError{Err: err}
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].ID, nil
}

func (c *Client) ReadContent(ctx context.Context, token, id string) ([]byte, error) {
	return c.do(ctx, token, http.MethodGet, c.APIURL+"/files/"+id+"?alt=media", "", nil, "read")
}

func (c *Client) WriteContent(ctx context.Context, token, id string, body []byte) (string, error) {
	if id != "" {
		return c.update(ctx, token, id, body)
	}
	return c.create(ctx, token, body)
}

// update overwrites an existing document in place.
func (c *Client) update(ctx context.Context, token, id string, body []byte) (string, error) {
	u := c.UploadURL + "/files/" + id + "?uploadType=media"
	res, err := c.do(ctx, token, http.MethodPatch, u, "application/json", bytes.NewReader(body), "update")
	if err != nil {
		return "", err
	}
	return parseFileID(res, id)
}

// create uploads a new document with its metadata (name + appDataFolder
// parent) as a multipart request.
func (c *Client) create(ctx context.Context, token string, body []byte) (string, error) {
	meta := map[string]any{
		"name":    c.Name,
		"parents": []string{"appDataFolder"},
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := writeJSONPart(w, "metadata", meta); err != nil {
		return "", &apperrors.StorageError{Op: "create", Err: err}
	}
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="file"`},
		"Content-Type":        {"application/json"},
	})
	if err != nil {
		return "", &apperrors.StorageError{Op: "create", Err: err}
	}
	if _, err := part.Write(body); err != nil {
		return "", &apperrors.StorageError{Op: "create", Err: err}
	}
	if err := w.Close(); err != nil {
		return "", &apperrors.StorageError{Op: "create", Err: err}
	}

	u := c.UploadURL + "/files?uploadType=multipart"
	res, err := c.do(ctx, token, http.MethodPost, u, w.FormDataContentType(), &buf, "create")
	if err != nil {
		return "", err
	}
	return parseFileID(res, "")
}

func writeJSONPart(w *multipart.Writer, field string, v any) error {
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {fmt.Sprintf(`form-data; name=%q`, field)},
		"Content-Type":        {"application/json"},
	})
	if err != nil {
		return err
	}
	return json.NewEncoder(part).Encode(v)
}

// do issues one authorized request and returns the response body, mapping
// any non-2xx status to a StorageError.
func (c *Client) do(ctx context.Context, token, method, url, contentType string, body io.Reader, op string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &apperrors.StorageError{Op: op, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &apperrors.StorageError{Op: op, Err: err}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &apperrors.StorageError{Op: op, Err: err}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &apperrors.StorageError{Op: op, Status: res.StatusCode}
	}
	return data, nil
}

func parseFileID(res []byte, fallback string) (string, error) {
	var meta fileMeta
	if err := json.Unmarshal(res, &meta); err != nil || meta.ID == "" {
		return fallback, nil
	}
	return meta.ID, nil
}
