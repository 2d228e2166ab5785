// Package api is a typed client for the remote expense store HTTP API.
// It owns no state: every method builds one request, decodes one response
// and reports failures through the TransportError / ReceiptRejectedError
// taxonomy. No operation is ever retried here; retry, if any, is the
// caller's decision.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/setiawand/expensebuddy/internal/models"
)

// DefaultBaseURL is the local development endpoint of the expense store.
const DefaultBaseURL = "http://localhost:8004"

// Client is a stateless wrapper around the remote expense store.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type createExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

// NewClient creates a remote store client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// ListExpenses fetches all expense records in the order the store returns them.
func (c *Client) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	const op = "list expenses"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/expenses", nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Op: op, Status: resp.StatusCode}
	}

	var expenses []models.Expense
	if err := json.NewDecoder(resp.Body).Decode(&expenses); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return expenses, nil
}

// CreateExpense submits a new expense and returns the stored record with
// its server-assigned id and date. The amount travels as a JSON number.
func (c *Client) CreateExpense(
	ctx context.Context,
	description string,
	amount decimal.Decimal,
) (models.Expense, error) {
	const op = "create expense"

	body, err := json.Marshal(createExpenseRequest{
		Description: description,
		Amount:      amount.InexactFloat64(),
	})
	if err != nil {
		return models.Expense{}, &TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/expenses", bytes.NewReader(body))
	if err != nil {
		return models.Expense{}, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Expense{}, &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Expense{}, &TransportError{Op: op, Status: resp.StatusCode}
	}

	var created models.Expense
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return models.Expense{}, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return created, nil
}

// GetExpense fetches a single expense by id. A 404 maps to ErrExpenseNotFound.
func (c *Client) GetExpense(ctx context.Context, id string) (models.Expense, error) {
	const op = "get expense"

	endpoint := c.baseURL + "/expenses/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Expense{}, &TransportError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Expense{}, &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.Expense{}, ErrExpenseNotFound
	case resp.StatusCode != http.StatusOK:
		return models.Expense{}, &TransportError{Op: op, Status: resp.StatusCode}
	}

	var expense models.Expense
	if err := json.NewDecoder(resp.Body).Decode(&expense); err != nil {
		return models.Expense{}, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return expense, nil
}

// DeleteExpense removes the expense with the given id from the remote store.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	const op = "delete expense"

	endpoint := c.baseURL + "/expenses/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: op, Status: resp.StatusCode}
	}
	return nil
}

// UploadReceipt submits a receipt image as multipart form content under the
// "file" field. The server's success payload is intentionally discarded: the
// only way to observe the outcome is a subsequent full list. A non-2xx
// response carrying a JSON detail message becomes a ReceiptRejectedError
// with that message verbatim; anything lower-level is a TransportError.
func (c *Client) UploadReceipt(ctx context.Context, filename string, file io.Reader) error {
	const op = "upload receipt"

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("build form: %w", err)}
	}
	if _, err := io.Copy(part, file); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("read file: %w", err)}
	}
	if err := writer.Close(); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("finalize form: %w", err)}
	}

	endpoint := c.baseURL + "/expenses/upload-receipt"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}

	var rejection detailResponse
	if err := json.NewDecoder(resp.Body).Decode(&rejection); err == nil && rejection.Detail != "" {
		return &ReceiptRejectedError{Detail: rejection.Detail}
	}
	return &TransportError{Op: op, Status: resp.StatusCode}
}
