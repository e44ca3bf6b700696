package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const listPageSize = 100

// Client talks to the hosted auth and storage REST APIs.
type Client struct {
	baseURL        string
	serviceRoleKey string
	httpClient     *http.Client
}

// NewClient creates a client. serviceRoleKey authorizes admin and storage calls.
func NewClient(baseURL, serviceRoleKey string) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		serviceRoleKey: serviceRoleKey,
		httpClient:     &http.Client{Timeout: 15 * time.Second},
	}
}

// GetUser resolves the user behind an access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/v1/user", nil, accessToken)
	if err != nil {
		return User{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("failed to call auth user API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return User{}, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return User{}, fmt.Errorf("auth user API error %d: %s", resp.StatusCode, string(raw))
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return User{}, fmt.Errorf("failed to decode auth user response: %w", err)
	}
	if u.ID == "" {
		return User{}, ErrInvalidToken
	}
	return u, nil
}

// DeleteUser removes an auth user through the admin API.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/auth/v1/admin/users/"+userID, nil, c.serviceRoleKey)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call admin delete user API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrUserNotFound
	case resp.StatusCode >= 300:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("admin delete user API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// ListObjects returns every object under prefix in bucket.
func (c *Client) ListObjects(ctx context.Context, bucket, prefix string) ([]Object, error) {
	var all []Object
	for offset := 0; ; offset += listPageSize {
		page, err := c.listPage(ctx, bucket, listObjectsRequest{Prefix: prefix, Limit: listPageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < listPageSize {
			return all, nil
		}
	}
}

func (c *Client) listPage(ctx context.Context, bucket string, body listObjectsRequest) ([]Object, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/storage/v1/object/list/"+bucket, body, c.serviceRoleKey)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call storage list API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("storage list API error %d: %s", resp.StatusCode, string(raw))
	}

	var objects []Object
	if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
		return nil, fmt.Errorf("failed to decode storage list response: %w", err)
	}
	return objects, nil
}

// RemoveObjects deletes the given object paths from bucket.
func (c *Client) RemoveObjects(ctx context.Context, bucket string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	req, err := c.newRequest(ctx, http.MethodDelete, "/storage/v1/object/"+bucket, removeObjectsRequest{Prefixes: paths}, c.serviceRoleKey)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call storage remove API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("storage remove API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, bearer string) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s %s request: %w", method, path, err)
		}
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("apikey", c.serviceRoleKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	return req, nil
}
