package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ytget/character-browser/internal/model"
)

// Endpoint defaults
const (
	DefaultBaseURL   = "https://rickandmortyapi.com/api"
	DefaultSinkURL   = "https://webhook.site/c07be521-865f-4e7d-ada1-4386e2b6ce13"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "character-browser"
)

// Multipart field names of the create call
const (
	FieldName      = "name"
	FieldStatus    = "status"
	FieldImageFile = "imageFile"
)

// Request headers
const (
	HeaderRequestID = "X-Request-ID"
	TracerName      = "github.com/ytget/character-browser/internal/api"
)

// Options configures a Client
type Options struct {
	BaseURL    string
	SinkURL    string
	HTTPClient *http.Client
	UserAgent  string

	// SimulateOnRemoteFailure keeps creation succeeding with a fabricated
	// record when the sink call fails. When false the failure propagates.
	SimulateOnRemoteFailure bool

	Fabricator *Fabricator
}

// DefaultOptions returns options that reproduce the stock behaviour
func DefaultOptions() Options {
	return Options{
		BaseURL:                 DefaultBaseURL,
		SinkURL:                 DefaultSinkURL,
		HTTPClient:              &http.Client{Timeout: DefaultTimeout},
		UserAgent:               DefaultUserAgent,
		SimulateOnRemoteFailure: true,
		Fabricator:              NewFabricator(),
	}
}

// CreatePayload is the transport form of a creation request
type CreatePayload struct {
	Name   string
	Status model.Status
	Image  *model.ImageFile
}

// NewCreatePayload builds the payload from form data
func NewCreatePayload(data model.NewCharacterData) CreatePayload {
	return CreatePayload{
		Name:   data.Name,
		Status: data.EffectiveStatus(),
		Image:  data.ImageFile,
	}
}

// Client talks to the character API and the creation sink
type Client struct {
	baseURL    string
	sinkURL    string
	httpClient *http.Client
	userAgent  string
	simulate   bool
	fabricator *Fabricator
	tracer     trace.Tracer
}

// NewClient creates a new API client
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Fabricator == nil {
		opts.Fabricator = NewFabricator()
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		sinkURL:    opts.SinkURL,
		httpClient: opts.HTTPClient,
		userAgent:  opts.UserAgent,
		simulate:   opts.SimulateOnRemoteFailure,
		fabricator: opts.Fabricator,
		tracer:     otel.Tracer(TracerName),
	}
}

// FetchPage returns one page of the character listing
func (c *Client) FetchPage(ctx context.Context, page int) (*model.CharacterPage, error) {
	ctx, span := c.tracer.Start(ctx, "api.FetchPage", trace.WithAttributes(attribute.Int("page", page)))
	defer span.End()

	endpoint := c.baseURL + "/character?page=" + strconv.Itoa(page)

	var result model.CharacterPage
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		log.Printf("Error fetching characters page %d: %v", page, err)
		fetchErr := newListError(err)
		recordError(span, fetchErr)
		return nil, fetchErr
	}

	span.SetAttributes(attribute.Int("results", len(result.Results)), attribute.Int("pages", result.Info.Pages))
	return &result, nil
}

// FetchByID returns a single character
func (c *Client) FetchByID(ctx context.Context, id int) (*model.Character, error) {
	ctx, span := c.tracer.Start(ctx, "api.FetchByID", trace.WithAttributes(attribute.Int("character.id", id)))
	defer span.End()

	endpoint := c.baseURL + "/character/" + strconv.Itoa(id)

	var result model.Character
	if err := c.getJSON(ctx, endpoint, &result); err != nil {
		log.Printf("Error fetching character %d: %v", id, err)
		fetchErr := newByIDError(id, err)
		recordError(span, fetchErr)
		return nil, fetchErr
	}
	return &result, nil
}

// CreateRemote posts the payload to the sink and returns a fabricated
// character. The sink response is ignored. A sink failure is logged and
// swallowed unless simulation on remote failure is disabled.
func (c *Client) CreateRemote(ctx context.Context, payload CreatePayload) (*model.Character, error) {
	requestID := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "api.CreateRemote", trace.WithAttributes(
		attribute.String("request.id", requestID),
		attribute.String("character.status", payload.Status.String()),
	))
	defer span.End()

	if err := c.postToSink(ctx, requestID, payload); err != nil {
		if !c.simulate {
			log.Printf("Create request %s failed: %v", requestID, err)
			createErr := &CreateError{Err: err}
			recordError(span, createErr)
			return nil, createErr
		}
		log.Printf("Create request %s failed, showing simulated character anyway: %v", requestID, err)
		span.AddEvent("sink failure swallowed")
	}

	character := c.fabricator.Fabricate(payload)
	span.SetAttributes(attribute.Int("character.id", character.ID))
	return &character, nil
}

// getJSON performs a GET and decodes the JSON body into target
func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", AcceptEncoding)
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{StatusCode: res.StatusCode, URL: endpoint}
	}

	body, err := readBody(res)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// postToSink sends the multipart form to the sink
func (c *Client) postToSink(ctx context.Context, requestID string, payload CreatePayload) error {
	if c.sinkURL == "" {
		return fmt.Errorf("sink url is not configured")
	}
	if _, err := url.Parse(c.sinkURL); err != nil {
		return fmt.Errorf("invalid sink url: %w", err)
	}

	body, contentType, err := encodeMultipart(requestID, payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sinkURL, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderRequestID, requestID)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{StatusCode: res.StatusCode, URL: c.sinkURL}
	}
	return nil
}

// encodeMultipart writes name, imageFile and status as multipart/form-data
func encodeMultipart(requestID string, payload CreatePayload) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField(FieldName, payload.Name); err != nil {
		return nil, "", fmt.Errorf("writing name field: %w", err)
	}

	if payload.Image != nil {
		detected := mimetype.Detect(payload.Image.Data)
		filename := payload.Image.Name
		if filename == "" {
			filename = requestID + detected.Extension()
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, FieldImageFile, escapeQuotes(filename)))
		header.Set("Content-Type", detected.String())

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("creating image part: %w", err)
		}
		if _, err := part.Write(payload.Image.Data); err != nil {
			return nil, "", fmt.Errorf("writing image part: %w", err)
		}
	}

	if err := writer.WriteField(FieldStatus, payload.Status.String()); err != nil {
		return nil, "", fmt.Errorf("writing status field: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}
	return &buf, writer.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
