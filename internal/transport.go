package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/derWhity/greentable/internal/ctxhelper"
	"github.com/derWhity/greentable/internal/log"
	"github.com/derWhity/greentable/internal/models"
	"github.com/derWhity/greentable/internal/storage"
)

const (
	apiBasePath = "/api"
	// UploadsPath is the URL path uploaded files are served at
	UploadsPath = "/uploads/"
	// path variable pattern for entity IDs
	idPattern = "{id:[0-9a-fA-F-]{36}}"
)

// Defines an error that defines the HTTP status that should be returned
type httpStatuser interface {
	Status() int
}

// Defines an error that returns a machine-readable error code
type errorCoder interface {
	ErrorCode() string
}

// Defines an error that contains a data field with additional information
type dataBearer interface {
	Data() interface{}
}

type errorResponse struct {
	basicResponse
	// The error code
	Error   string      `json:"error"`
	Message string      `json:"errorMessage"`
	Details interface{} `json:"errorDetails,omitempty"`
}

// Services bundles everything served by the HTTP handler
type Services struct {
	Schedule    ScheduleService
	Tournaments TournamentService
	Menu        MenuService
	Content     ContentService
	Sessions    SessionService
	Config      ConfigService
	// Directory the uploaded files are served from
	UploadsDir string
	// Directory containing the web UI - not served if empty
	UIDir string
}

// MakeHTTPHandler creates the main HTTP handler for the club site
func MakeHTTPHandler(svc Services, logger *logrus.Entry) http.Handler {
	r := mux.NewRouter()

	options := []httptransport.ServerOption{
		httptransport.ServerErrorEncoder(encodeError),
		httptransport.ServerBefore(makeContextInjector(logger)),
		httptransport.ServerBefore(makeSessionDecoder(svc.Sessions)),
	}

	// -- Config service -------------------------------
	{
		cEp := MakeConfigEndpoints(svc.Config)

		// GetDisplay
		r.Methods(http.MethodGet).Path(apiBasePath + "/config/display").Handler(httptransport.NewServer(
			cEp.GetDisplay,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))

		// UpdateDisplay
		r.Methods(http.MethodPut).Path(apiBasePath + "/config/display").Handler(httptransport.NewServer(
			cEp.UpdateDisplay,
			decodeDisplaySettings,
			encodeJSONResponse,
			options...,
		))
	}

	// -- Schedule service -----------------------------
	{
		sEp := MakeScheduleEndpoints(svc.Schedule)

		// Week
		r.Methods(http.MethodGet).Path(apiBasePath + "/schedule/week").Handler(httptransport.NewServer(
			sEp.Week,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))

		// Day
		r.Methods(http.MethodGet).Path(apiBasePath + "/schedule/day/{date}").Handler(httptransport.NewServer(
			sEp.Day,
			decodePathVar("date"),
			encodeJSONResponse,
			options...,
		))

		// Featured
		r.Methods(http.MethodGet).Path(apiBasePath + "/schedule/featured/{surface}").Handler(httptransport.NewServer(
			sEp.Featured,
			decodePathVar("surface"),
			encodeJSONResponse,
			options...,
		))

		// List
		r.Methods(http.MethodGet).Path(apiBasePath + "/schedule").Handler(httptransport.NewServer(
			sEp.List,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))

		// Refresh
		r.Methods(http.MethodPost).Path(apiBasePath + "/schedule/refresh").Handler(httptransport.NewServer(
			sEp.Refresh,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))

		// Calendar
		r.Methods(http.MethodGet).Path("/calendar.ics").Handler(httptransport.NewServer(
			sEp.Calendar,
			decodeNilRequest,
			encodeCalendarResponse,
			options...,
		))

		// Export
		r.Methods(http.MethodGet).Path(apiBasePath + "/tournaments/export.xlsx").Handler(httptransport.NewServer(
			sEp.Export,
			decodeNilRequest,
			encodeWorkbookResponse,
			options...,
		))
	}

	// -- Tournament service ---------------------------
	{
		tEp := MakeTournamentEndpoints(svc.Tournaments)

		// List
		r.Methods(http.MethodGet).Path(apiBasePath + "/tournaments").Handler(httptransport.NewServer(
			tEp.List,
			decodeSearchRequest,
			encodeJSONResponse,
			options...,
		))

		// Get
		r.Methods(http.MethodGet).Path(apiBasePath + "/tournaments/" + idPattern).Handler(httptransport.NewServer(
			tEp.Get,
			decodeIDFromPath,
			encodeJSONResponse,
			options...,
		))

		// Create
		r.Methods(http.MethodPost).Path(apiBasePath + "/tournaments").Handler(httptransport.NewServer(
			tEp.Create,
			decodeTournament,
			encodeJSONResponse,
			options...,
		))

		// Update
		r.Methods(http.MethodPut).Path(apiBasePath + "/tournaments/" + idPattern).Handler(httptransport.NewServer(
			tEp.Update,
			decodeTournamentUpdate,
			encodeJSONResponse,
			options...,
		))

		// Delete
		r.Methods(http.MethodDelete).Path(apiBasePath + "/tournaments/" + idPattern).Handler(httptransport.NewServer(
			tEp.Delete,
			decodeIDFromPath,
			encodeJSONResponse,
			options...,
		))

		// DateHint
		r.Methods(http.MethodPost).Path(apiBasePath + "/tournaments/dateHint").Handler(httptransport.NewServer(
			tEp.DateHint,
			decodeDateHintRequest,
			encodeJSONResponse,
			options...,
		))
	}

	// -- Menu service ---------------------------------
	{
		mEp := MakeMenuEndpoints(svc.Menu)

		// Categories
		r.Methods(http.MethodGet).Path(apiBasePath + "/menu").Handler(httptransport.NewServer(
			mEp.Categories,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))

		// List
		r.Methods(http.MethodGet).Path(apiBasePath + "/menu/items").Handler(httptransport.NewServer(
			mEp.List,
			decodeSearchRequest,
			encodeJSONResponse,
			options...,
		))

		// Get
		r.Methods(http.MethodGet).Path(apiBasePath + "/menu/items/" + idPattern).Handler(httptransport.NewServer(
			mEp.Get,
			decodeIDFromPath,
			encodeJSONResponse,
			options...,
		))

		// Create
		r.Methods(http.MethodPost).Path(apiBasePath + "/menu/items").Handler(httptransport.NewServer(
			mEp.Create,
			decodeMenuItem,
			encodeJSONResponse,
			options...,
		))

		// Update
		r.Methods(http.MethodPut).Path(apiBasePath + "/menu/items/" + idPattern).Handler(httptransport.NewServer(
			mEp.Update,
			decodeMenuItemUpdate,
			encodeJSONResponse,
			options...,
		))

		// Delete
		r.Methods(http.MethodDelete).Path(apiBasePath + "/menu/items/" + idPattern).Handler(httptransport.NewServer(
			mEp.Delete,
			decodeIDFromPath,
			encodeJSONResponse,
			options...,
		))
	}

	// -- Content service ------------------------------
	{
		cEp := MakeContentEndpoints(svc.Content)

		// Images
		r.Methods(http.MethodGet).Path(apiBasePath + "/images").Handler(httptransport.NewServer(
			cEp.Images,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))

		// ImageURL
		r.Methods(http.MethodGet).Path(apiBasePath + "/images/{type}").Handler(httptransport.NewServer(
			cEp.ImageURL,
			decodeImageURLRequest,
			encodeJSONResponse,
			options...,
		))

		// SetImage
		r.Methods(http.MethodPut).Path(apiBasePath + "/images/{type}").Handler(httptransport.NewServer(
			cEp.SetImage,
			decodeSiteImage,
			encodeJSONResponse,
			options...,
		))

		// DeleteImage
		r.Methods(http.MethodDelete).Path(apiBasePath + "/images/{type}").Handler(httptransport.NewServer(
			cEp.DeleteImage,
			decodePathVar("type"),
			encodeJSONResponse,
			options...,
		))

		// Banners
		r.Methods(http.MethodGet).Path(apiBasePath + "/banners").Handler(httptransport.NewServer(
			cEp.Banners,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))

		// AllBanners
		r.Methods(http.MethodGet).Path(apiBasePath + "/banners/all").Handler(httptransport.NewServer(
			cEp.AllBanners,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))

		// CreateBanner
		r.Methods(http.MethodPost).Path(apiBasePath + "/banners").Handler(httptransport.NewServer(
			cEp.CreateBanner,
			decodeBanner,
			encodeJSONResponse,
			options...,
		))

		// UpdateBanner
		r.Methods(http.MethodPut).Path(apiBasePath + "/banners/" + idPattern).Handler(httptransport.NewServer(
			cEp.UpdateBanner,
			decodeBannerUpdate,
			encodeJSONResponse,
			options...,
		))

		// DeleteBanner
		r.Methods(http.MethodDelete).Path(apiBasePath + "/banners/" + idPattern).Handler(httptransport.NewServer(
			cEp.DeleteBanner,
			decodeIDFromPath,
			encodeJSONResponse,
			options...,
		))

		// PlaceBannerBefore
		r.Methods(http.MethodPut).Path(apiBasePath + "/banners/" + idPattern + "/before/{otherId}").Handler(
			httptransport.NewServer(
				cEp.PlaceBannerBefore,
				decodeReorderRequest,
				encodeJSONResponse,
				options...,
			))

		// Champions
		r.Methods(http.MethodGet).Path(apiBasePath + "/champions").Handler(httptransport.NewServer(
			cEp.Champions,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))

		// GetChampion
		r.Methods(http.MethodGet).Path(apiBasePath + "/champions/" + idPattern).Handler(httptransport.NewServer(
			cEp.GetChampion,
			decodeIDFromPath,
			encodeJSONResponse,
			options...,
		))

		// CreateChampion
		r.Methods(http.MethodPost).Path(apiBasePath + "/champions").Handler(httptransport.NewServer(
			cEp.CreateChampion,
			decodeChampion,
			encodeJSONResponse,
			options...,
		))

		// UpdateChampion
		r.Methods(http.MethodPut).Path(apiBasePath + "/champions/" + idPattern).Handler(httptransport.NewServer(
			cEp.UpdateChampion,
			decodeChampionUpdate,
			encodeJSONResponse,
			options...,
		))

		// DeleteChampion
		r.Methods(http.MethodDelete).Path(apiBasePath + "/champions/" + idPattern).Handler(httptransport.NewServer(
			cEp.DeleteChampion,
			decodeIDFromPath,
			encodeJSONResponse,
			options...,
		))

		// Upload
		r.Methods(http.MethodPost).Path(apiBasePath + "/uploads").Handler(httptransport.NewServer(
			cEp.Upload,
			decodeUploadRequest,
			encodeJSONResponse,
			options...,
		))
	}

	// -- Session Service ------------------------------
	{
		sEp := MakeSessionEndpoints(svc.Sessions)

		// Login
		r.Methods(http.MethodPost).Path(apiBasePath + "/login").Handler(httptransport.NewServer(
			sEp.Login,
			decodeLoginRequest,
			encodeJSONResponse,
			options...,
		))

		// Logout
		r.Methods(http.MethodPost).Path(apiBasePath + "/logout").Handler(httptransport.NewServer(
			sEp.Logout,
			decodeToken,
			encodeJSONResponse,
			options...,
		))

		// WhoAmI
		r.Methods(http.MethodGet).Path(apiBasePath + "/whoami").Handler(httptransport.NewServer(
			sEp.WhoAmI,
			decodeToken,
			encodeJSONResponse,
			options...,
		))
	}

	// Simple alive answer for checking if HTTP can be reached
	r.Methods(http.MethodGet).Path("/alive").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		data := map[string]bool{"ok": true}
		json.NewEncoder(w).Encode(data)
	})

	r.Methods(http.MethodGet).Path("/metrics").Handler(promhttp.Handler())

	if svc.UploadsDir != "" {
		r.Methods(http.MethodGet).PathPrefix(UploadsPath).Handler(
			uploadHeaders(http.StripPrefix(UploadsPath, http.FileServer(http.Dir(svc.UploadsDir)))),
		)
	}

	// Plain file service for the UI
	if svc.UIDir != "" {
		r.Methods(http.MethodGet).PathPrefix("/").Handler(http.FileServer(http.Dir(svc.UIDir)))
	}

	return r
}

// decodeNilRequest just does nothing with the request. It is used for endpoints that don't need anything to be passed
func decodeNilRequest(_ context.Context, r *http.Request) (request interface{}, err error) {
	return nil, nil
}

// decodeJSONBody reads the request's JSON body into v
func decodeJSONBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return MakeError(
			http.StatusBadRequest,
			ErrCodeIllegalJSON,
			fmt.Sprintf("Failed to decode JSON body: %v", err),
		)
	}
	return nil
}

// decodePathVar returns a decoder that passes the value of the given path variable as the request
func decodePathVar(name string) httptransport.DecodeRequestFunc {
	return func(_ context.Context, r *http.Request) (interface{}, error) {
		str, ok := mux.Vars(r)[name]
		if !ok || strings.TrimSpace(str) == "" {
			return nil, MakeError(http.StatusBadRequest, ErrCodeIllegalPath, fmt.Sprintf("Missing path value '%s'", name))
		}
		return str, nil
	}
}

// getIDFromPath is a helper function that gets an entity ID from the given path variable
func getIDFromPath(varname string, r *http.Request) (string, error) {
	errmsg := fmt.Sprintf("Value for '%s' is no valid ID", varname)
	str, ok := mux.Vars(r)[varname]
	if !ok {
		return "", MakeError(http.StatusBadRequest, ErrCodeInvalidID, errmsg)
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return "", MakeError(http.StatusBadRequest, ErrCodeInvalidID, errmsg)
	}
	return id.String(), nil
}

// Decodes an ID from the "id" path variable provided by GoRilla
func decodeIDFromPath(ctx context.Context, r *http.Request) (interface{}, error) {
	return getIDFromPath("id", r)
}

// decodeReorderRequest loads the IDs needed for a reorder operation from the path variables
func decodeReorderRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	entryID, err := getIDFromPath("id", r)
	if err != nil {
		return nil, err
	}
	otherEntryID, err := getIDFromPath("otherId", r)
	if err != nil {
		return nil, err
	}
	return reorderRequest{Entry: entryID, OtherEntry: otherEntryID}, nil
}

// decodeLoginRequest decodes a login request from the JSON body
func decodeLoginRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req loginRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return nil, err
	}
	return req, nil
}

// decodeToken gets the token from the call's context
func decodeToken(ctx context.Context, r *http.Request) (request interface{}, err error) {
	session := ctxhelper.Session(ctx)
	if session == nil {
		return nil, MakeError(
			http.StatusBadRequest,
			ErrCodeNotLoggedIn,
			"You need an active session for this operation",
		)
	}
	return session.ID, nil
}

// decodePaginationRequest reads the pagination information from the request's query variables
func decodePaginationRequest(_ context.Context, r *http.Request) (request interface{}, err error) {
	val := r.URL.Query()
	var offset, limit uint
	if i, err := strconv.ParseUint(val.Get("offset"), 10, 64); err == nil {
		offset = uint(i)
	}
	if i, err := strconv.ParseUint(val.Get("limit"), 10, 64); err == nil {
		limit = uint(i)
	}
	return Page(offset, limit), nil
}

// decodeSearchRequest decodes the parameters of a search by checking the GET variables "search", "limit" and "offset"
func decodeSearchRequest(ctx context.Context, r *http.Request) (request interface{}, err error) {
	val := r.URL.Query()
	pag, _ := decodePaginationRequest(ctx, r)
	search := Search{
		Search:     val.Get("search"),
		Pagination: pag.(Pagination),
	}
	return search, nil
}

// decodeDisplaySettings reads new display settings from the JSON body
func decodeDisplaySettings(_ context.Context, r *http.Request) (interface{}, error) {
	var c models.DisplayConfig
	if err := decodeJSONBody(r, &c); err != nil {
		return nil, err
	}
	return c, nil
}

// decodeDateHintRequest reads the text to find a date in from the JSON body
func decodeDateHintRequest(_ context.Context, r *http.Request) (interface{}, error) {
	var req dateHintRequest
	if err := decodeJSONBody(r, &req); err != nil {
		return nil, err
	}
	return req, nil
}

// decodeTournament tries to load a tournament object from the provided HTTP request's body
func decodeTournament(_ context.Context, r *http.Request) (interface{}, error) {
	var t models.Tournament
	if err := decodeJSONBody(r, &t); err != nil {
		return nil, err
	}
	return t, nil
}

// Decodes a tournament from an update request where the ID of the tournament is in the path
func decodeTournamentUpdate(ctx context.Context, r *http.Request) (interface{}, error) {
	id, err := getIDFromPath("id", r)
	if err != nil {
		return nil, err
	}
	t, err := decodeTournament(ctx, r)
	if err != nil {
		return nil, err
	}
	ret := t.(models.Tournament)
	ret.ID = id
	return ret, nil
}

// decodeMenuItem tries to load a menu item from the provided HTTP request's body
func decodeMenuItem(_ context.Context, r *http.Request) (interface{}, error) {
	var item models.MenuItem
	if err := decodeJSONBody(r, &item); err != nil {
		return nil, err
	}
	return item, nil
}

// Decodes a menu item from an update request where the ID of the item is in the path
func decodeMenuItemUpdate(ctx context.Context, r *http.Request) (interface{}, error) {
	id, err := getIDFromPath("id", r)
	if err != nil {
		return nil, err
	}
	item, err := decodeMenuItem(ctx, r)
	if err != nil {
		return nil, err
	}
	ret := item.(models.MenuItem)
	ret.ID = id
	return ret, nil
}

// uploadHeaders keeps uploaded files inert: SVG images must not run scripts when opened directly
func uploadHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'unsafe-inline'; sandbox")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next.ServeHTTP(w, r)
	})
}

// decodeImageURLRequest reads the image type from the path and the optional "fallback" query variable
func decodeImageURLRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	imageType, err := decodePathVar("type")(ctx, r)
	if err != nil {
		return nil, err
	}
	return imageURLRequest{
		Type:     imageType.(string),
		Fallback: r.URL.Query().Get("fallback"),
	}, nil
}

// decodeSiteImage loads a site image from the body, the image type is taken from the path
func decodeSiteImage(ctx context.Context, r *http.Request) (interface{}, error) {
	imageType, err := decodePathVar("type")(ctx, r)
	if err != nil {
		return nil, err
	}
	var img models.SiteImage
	if err := decodeJSONBody(r, &img); err != nil {
		return nil, err
	}
	img.Type = imageType.(string)
	return img, nil
}

// decodeBanner tries to load a banner from the provided HTTP request's body
func decodeBanner(_ context.Context, r *http.Request) (interface{}, error) {
	var b models.Banner
	if err := decodeJSONBody(r, &b); err != nil {
		return nil, err
	}
	return b, nil
}

// Decodes a banner from an update request where the ID of the banner is in the path
func decodeBannerUpdate(ctx context.Context, r *http.Request) (interface{}, error) {
	id, err := getIDFromPath("id", r)
	if err != nil {
		return nil, err
	}
	b, err := decodeBanner(ctx, r)
	if err != nil {
		return nil, err
	}
	ret := b.(models.Banner)
	ret.ID = id
	return ret, nil
}

// decodeChampion tries to load a hall of fame entry from the provided HTTP request's body
func decodeChampion(_ context.Context, r *http.Request) (interface{}, error) {
	var c models.Champion
	if err := decodeJSONBody(r, &c); err != nil {
		return nil, err
	}
	return c, nil
}

// Decodes a hall of fame entry from an update request where the ID of the entry is in the path
func decodeChampionUpdate(ctx context.Context, r *http.Request) (interface{}, error) {
	id, err := getIDFromPath("id", r)
	if err != nil {
		return nil, err
	}
	c, err := decodeChampion(ctx, r)
	if err != nil {
		return nil, err
	}
	ret := c.(models.Champion)
	ret.ID = id
	return ret, nil
}

// decodeUploadRequest takes the file from the "file" field of a multipart form
func decodeUploadRequest(_ context.Context, r *http.Request) (interface{}, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, storage.MaxUploadSize+1<<20)
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, MakeError(
			http.StatusBadRequest,
			ErrCodeRequiredFieldMissing,
			fmt.Sprintf("Expected a multipart form with a 'file' field: %v", err),
		)
	}
	return uploadRequest{File: file, Name: header.Filename}, nil
}

// Encodes a typical JSON response
func encodeJSONResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

// Encodes an iCalendar document
func encodeCalendarResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	cal, ok := response.(calendarResponse)
	if !ok {
		return encodeJSONResponse(ctx, w, response)
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="torneios.ics"`)
	_, err := w.Write([]byte(cal))
	return err
}

// Encodes an XLSX workbook as a download
func encodeWorkbookResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	data, ok := response.(workbookResponse)
	if !ok {
		return encodeJSONResponse(ctx, w, response)
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="torneios.xlsx"`)
	_, err := w.Write(data)
	return err
}

// Builds an error response based on the incoming error
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	if err == nil {
		panic("encodeError with nil error")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if st, ok := err.(httpStatuser); ok {
		w.WriteHeader(st.Status())
	} else {
		w.WriteHeader(http.StatusInternalServerError)
	}
	ret := errorResponse{
		basicResponse: basicResponse{false, nil},
		Message:       err.Error(),
		Error:         ErrCodeUnknown,
	}
	if cd, ok := err.(errorCoder); ok {
		ret.Error = cd.ErrorCode()
	}
	if db, ok := err.(dataBearer); ok {
		if data := db.Data(); data != nil {
			if err, ok := data.(error); ok {
				ret.Details = err.Error()
			} else {
				ret.Details = data
			}
		}
	}
	json.NewEncoder(w).Encode(&ret)
}

// makeSessionDecoder returns a function that is used in every HTTP call to decode the session used, if a session
// token is sent by the client
func makeSessionDecoder(s SessionService) httptransport.RequestFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		token := strings.TrimSpace(r.Header.Get("token"))
		logger := ctxhelper.Logger(ctx)
		if token != "" {
			// Try to load the session's data
			sess, user, err := s.GetContents(ctx, token, true)
			if err != nil {
				logger.WithError(err).WithField(log.FldSession, token).Error("Failed to retrieve session information")
				return ctx
			}
			if sess == nil || user == nil {
				// Nobody logged in
				return ctx
			}
			ctx = ctxhelper.WithSession(ctx, *sess, *user)
			ctx = ctxhelper.WithLogger(ctx, logger.WithFields(logrus.Fields{
				log.FldSession: sess.ID,
				log.FldUser:    user.ID,
			}))
		}
		return ctx
	}
}

func makeContextInjector(logger *logrus.Entry) httptransport.RequestFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		return ctxhelper.WithLogger(ctx, logger)
	}
}
