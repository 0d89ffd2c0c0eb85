// Package notesclient is a typed HTTP client for the /api/notes endpoints.
package notesclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	v1 "github.com/evgeniy-krivenko/notes-api/pkg/api/notes/v1"
)

var ErrNotFound = errors.New("note not found")

// StatusError is returned for any unexpected response status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

type Client struct {
	rc *resty.Client
}

func New(baseURL string) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{rc: rc}
}

func (c *Client) ListNotes(ctx context.Context) ([]v1.Note, error) {
	var notes []v1.Note
	resp, err := c.rc.R().
		SetContext(ctx).
		SetResult(&notes).
		Get(v1.BasePath)
	if err != nil {
		return nil, fmt.Errorf("list notes: %v", err)
	}
	if err := checkStatus(resp); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (c *Client) GetNote(ctx context.Context, id int64) (v1.Note, error) {
	var note v1.Note
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&note).
		Get(v1.BasePath + "/{id}")
	if err != nil {
		return v1.Note{}, fmt.Errorf("get note: %v", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return v1.Note{}, ErrNotFound
	}
	if err := checkStatus(resp); err != nil {
		return v1.Note{}, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

func (c *Client) CreateNote(ctx context.Context, title string, content *string) (v1.Note, error) {
	var note v1.Note
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(v1.CreateNoteRequest{Title: &title, Content: content}).
		SetResult(&note).
		Post(v1.BasePath)
	if err != nil {
		return v1.Note{}, fmt.Errorf("create note: %v", err)
	}
	if err := checkStatus(resp); err != nil {
		return v1.Note{}, fmt.Errorf("create note: %w", err)
	}

	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, id int64, title string, content *string) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(v1.UpdateNoteRequest{Title: &title, Content: content}).
		Put(v1.BasePath + "/{id}")
	if err != nil {
		return fmt.Errorf("update note: %v", err)
	}
	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	return nil
}

func (c *Client) DeleteNote(ctx context.Context, id int64) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(v1.BasePath + "/{id}")
	if err != nil {
		return fmt.Errorf("delete note: %v", err)
	}
	if err := checkStatus(resp); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	return nil
}

func checkStatus(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	return &StatusError{Code: resp.StatusCode(), Body: resp.String()}
}
