// Package trello provides the API client for the Trello REST API.
//
// Purpose:
//
//	REST client for boards, lists and cards. Builds authenticated URLs
//	(key/token query parameters on every request), performs one HTTP call per
//	operation and translates the outcome into a result.Result envelope:
//	status codes are inspected after the call and mapped onto the CLI error
//	taxonomy, transport failures become HTTP_ERROR, decode failures ERROR.
//
// Dependencies:
//   - internal/client: single-attempt request execution with a deadline
//   - internal/config: credentials
//   - go.opentelemetry.io/otel: one span per operation
//
package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/ZenoxZX/trello-cli/internal/client"
	"github.com/ZenoxZX/trello-cli/internal/config"
	clierrors "github.com/ZenoxZX/trello-cli/internal/errors"
	"github.com/ZenoxZX/trello-cli/internal/logging"
	"github.com/ZenoxZX/trello-cli/internal/result"
)

const tracerName = "github.com/ZenoxZX/trello-cli/internal/client/trello"

// Client provides access to the Trello REST API.
type Client struct {
	baseURL    string
	creds      *config.Credentials
	httpClient *http.Client
	requestCfg client.RequestConfig
	logger     *logging.Logger
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the deadline applied to each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.requestCfg.Timeout = timeout
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new Trello API client. The credentials are captured
// once and used for every request.
func NewClient(creds *config.Credentials, opts ...Option) *Client {
	if creds == nil {
		creds = &config.Credentials{}
	}
	c := &Client{
		baseURL:    config.DefaultAPIURL,
		creds:      creds,
		httpClient: &http.Client{},
		requestCfg: client.DefaultRequestConfig(),
		logger:     logging.Nop(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListBoards lists the open boards of the authenticated member.
func (c *Client) ListBoards(ctx context.Context) result.Result[[]Board] {
	boards, err := fetchList[Board](ctx, c, request{
		op:     "ListBoards",
		method: http.MethodGet,
		path:   "/members/me/boards",
		query:  url.Values{"filter": {"open"}},
	})
	return result.From(boards, err)
}

// GetBoard fetches a board by id.
func (c *Client) GetBoard(ctx context.Context, boardID string) result.Result[Board] {
	board, err := fetchRecord[Board](ctx, c, request{
		op:       "GetBoard",
		method:   http.MethodGet,
		path:     "/boards/" + url.PathEscape(boardID),
		notFound: clierrors.NewNotFoundError("Board"),
	}, clierrors.NewNotFoundError("Board"))
	return result.From(board, err)
}

// ListLists lists the open lists of a board.
func (c *Client) ListLists(ctx context.Context, boardID string) result.Result[[]List] {
	lists, err := fetchList[List](ctx, c, request{
		op:       "ListLists",
		method:   http.MethodGet,
		path:     "/boards/" + url.PathEscape(boardID) + "/lists",
		query:    url.Values{"filter": {"open"}},
		notFound: clierrors.NewNotFoundError("Board"),
	})
	return result.From(lists, err)
}

// CreateList creates a list on a board. Name and board id travel as query
// parameters with an empty body.
func (c *Client) CreateList(ctx context.Context, boardID, name string) result.Result[List] {
	list, err := fetchRecord[List](ctx, c, request{
		op:     "CreateList",
		method: http.MethodPost,
		path:   "/lists",
		query:  url.Values{"name": {name}, "idBoard": {boardID}},
	}, clierrors.NewCreateFailedError("list"))
	return result.From(list, err)
}

// ListCardsInList lists the cards of a list.
func (c *Client) ListCardsInList(ctx context.Context, listID string) result.Result[[]Card] {
	cards, err := fetchList[Card](ctx, c, request{
		op:       "ListCardsInList",
		method:   http.MethodGet,
		path:     "/lists/" + url.PathEscape(listID) + "/cards",
		notFound: clierrors.NewNotFoundError("List"),
	})
	return result.From(cards, err)
}

// ListCardsInBoard lists the open cards of a board.
func (c *Client) ListCardsInBoard(ctx context.Context, boardID string) result.Result[[]Card] {
	cards, err := fetchList[Card](ctx, c, request{
		op:       "ListCardsInBoard",
		method:   http.MethodGet,
		path:     "/boards/" + url.PathEscape(boardID) + "/cards",
		query:    url.Values{"filter": {"open"}},
		notFound: clierrors.NewNotFoundError("Board"),
	})
	return result.From(cards, err)
}

// GetCard fetches a card by id.
func (c *Client) GetCard(ctx context.Context, cardID string) result.Result[Card] {
	card, err := fetchRecord[Card](ctx, c, request{
		op:       "GetCard",
		method:   http.MethodGet,
		path:     "/cards/" + url.PathEscape(cardID),
		notFound: clierrors.NewNotFoundError("Card"),
	}, clierrors.NewNotFoundError("Card"))
	return result.From(card, err)
}

// CreateCard creates a card in a list. Empty desc and due are not sent.
func (c *Client) CreateCard(ctx context.Context, listID, name, desc, due string) result.Result[Card] {
	form := url.Values{"idList": {listID}, "name": {name}}
	if desc != "" {
		form.Set("desc", desc)
	}
	if due != "" {
		form.Set("due", due)
	}

	card, err := fetchRecord[Card](ctx, c, request{
		op:     "CreateCard",
		method: http.MethodPost,
		path:   "/cards",
		form:   form,
	}, clierrors.NewCreateFailedError("card"))
	return result.From(card, err)
}

// UpdateCard updates the supplied fields of a card. With nothing to change it
// fails with NO_PARAMS before any request is made.
func (c *Client) UpdateCard(ctx context.Context, cardID string, update CardUpdate) result.Result[Card] {
	form := update.form()
	if len(form) == 0 {
		return result.FromError[Card](clierrors.NewNoParamsError())
	}

	card, err := fetchRecord[Card](ctx, c, request{
		op:       "UpdateCard",
		method:   http.MethodPut,
		path:     "/cards/" + url.PathEscape(cardID),
		form:     form,
		notFound: clierrors.NewNotFoundError("Card"),
	}, clierrors.NewUpdateFailedError("card"))
	return result.From(card, err)
}

// MoveCard moves a card to another list.
func (c *Client) MoveCard(ctx context.Context, cardID, listID string) result.Result[Card] {
	return c.UpdateCard(ctx, cardID, CardUpdate{ListID: &listID})
}

// DeleteCard deletes a card.
func (c *Client) DeleteCard(ctx context.Context, cardID string) result.Result[bool] {
	_, err := c.do(ctx, request{
		op:       "DeleteCard",
		method:   http.MethodDelete,
		path:     "/cards/" + url.PathEscape(cardID),
		notFound: clierrors.NewNotFoundError("Card"),
	})
	if err != nil {
		return result.FromError[bool](err)
	}
	return result.Success(true)
}

// CheckAuth verifies the credentials and returns the member they belong to.
func (c *Client) CheckAuth(ctx context.Context) result.Result[Member] {
	resp, err := c.do(ctx, request{
		op:           "CheckAuth",
		method:       http.MethodGet,
		path:         "/members/me",
		query:        url.Values{"fields": {"id,username,fullName"}},
		unauthorized: clierrors.NewUnauthorizedError(),
	})
	if err != nil {
		return result.FromError[Member](err)
	}

	member, err := decodeMember(resp.Body)
	return result.From(member, err)
}

func (u CardUpdate) form() url.Values {
	form := url.Values{}
	if u.Name != nil && *u.Name != "" {
		form.Set("name", *u.Name)
	}
	if u.Desc != nil {
		form.Set("desc", *u.Desc)
	}
	if u.Due != nil {
		form.Set("due", *u.Due)
	}
	if u.ListID != nil && *u.ListID != "" {
		form.Set("idList", *u.ListID)
	}
	if u.LabelIDs != nil {
		form.Set("idLabels", *u.LabelIDs)
	}
	if u.MemberIDs != nil {
		form.Set("idMembers", *u.MemberIDs)
	}
	return form
}

// request describes one outbound call.
type request struct {
	op     string
	method string
	path   string
	query  url.Values // endpoint parameters, appended after the auth query
	form   url.Values // form-encoded body, if any

	notFound     *clierrors.CLIError // returned on 404 when set
	unauthorized *clierrors.CLIError // returned on 401 when set
}

func (c *Client) url(r request) string {
	u := c.baseURL + r.path + "?" + c.creds.AuthQuery()
	if len(r.query) > 0 {
		u += "&" + r.query.Encode()
	}
	return u
}

// do performs the request and returns the response when the status is 2xx.
// Every error it returns is a *CLIError.
func (c *Client) do(ctx context.Context, r request) (*client.Response, error) {
	ctx, span := c.tracer.Start(ctx, "trello."+r.op, trace.WithAttributes(
		attribute.String("http.method", r.method),
		attribute.String("trello.path", r.path),
	))
	defer span.End()

	log := c.logger.WithContext(ctx).With(
		zap.String("operation", r.op),
		zap.String("method", r.method),
		zap.String("path", r.path),
	)

	var body *strings.Reader
	if r.form != nil {
		body = strings.NewReader(r.form.Encode())
	}

	var httpReq *http.Request
	var err error
	if body != nil {
		httpReq, err = http.NewRequestWithContext(ctx, r.method, c.url(r), body)
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, r.method, c.url(r), nil)
	}
	if err != nil {
		cliErr := clierrors.NewGenericError(fmt.Errorf("create request: %s", logging.RedactString(err.Error())))
		span.SetStatus(codes.Error, cliErr.Message)
		return nil, cliErr
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := client.Execute(ctx, c.httpClient, httpReq, c.requestCfg)
	if err != nil {
		cliErr := clierrors.NewHTTPError(logging.RedactString(err.Error()))
		span.SetStatus(codes.Error, cliErr.Message)
		log.Warn("trello request failed", zap.Duration("duration", time.Since(start)), zap.String("error", cliErr.Message))
		return nil, cliErr
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	log.Debug("trello request",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.Success() {
		return resp, nil
	}

	cliErr := c.statusError(r, resp.StatusCode)
	span.SetStatus(codes.Error, cliErr.Message)
	log.Warn("trello request rejected", zap.Int("status", resp.StatusCode), zap.String("code", string(cliErr.Code)))
	return nil, cliErr
}

func (c *Client) statusError(r request, status int) *clierrors.CLIError {
	switch {
	case status == http.StatusNotFound && r.notFound != nil:
		return r.notFound
	case status == http.StatusUnauthorized && r.unauthorized != nil:
		return r.unauthorized
	default:
		return clierrors.NewHTTPError(client.StatusMessage(status))
	}
}

// fetchList performs r and decodes a JSON array. A null body yields an empty list.
func fetchList[T any](ctx context.Context, c *Client, r request) ([]T, error) {
	resp, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, clierrors.NewGenericError(err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// fetchRecord performs r and decodes a single JSON object. A null body yields
// the absent error.
func fetchRecord[T any](ctx context.Context, c *Client, r request, absent *clierrors.CLIError) (T, error) {
	var zero T

	resp, err := c.do(ctx, r)
	if err != nil {
		return zero, err
	}

	var record *T
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return zero, clierrors.NewGenericError(err)
	}
	if record == nil {
		return zero, absent
	}
	return *record, nil
}

func decodeMember(body []byte) (Member, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Member{}, clierrors.NewGenericError(err)
	}

	var member Member
	var err error
	if member.ID, err = stringField(raw, "id"); err != nil {
		return Member{}, err
	}
	if member.Username, err = stringField(raw, "username"); err != nil {
		return Member{}, err
	}
	if member.FullName, err = stringField(raw, "fullName"); err != nil {
		return Member{}, err
	}
	return member, nil
}

// stringField requires key to be present; a JSON null reads as "".
func stringField(raw map[string]json.RawMessage, key string) (string, error) {
	value, ok := raw[key]
	if !ok {
		return "", clierrors.NewGenericError(fmt.Errorf("response is missing %q", key))
	}
	var s *string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", clierrors.NewGenericError(err)
	}
	if s == nil {
		return "", nil
	}
	return *s, nil
}
