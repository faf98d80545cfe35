package internal

import (
	"fmt"
	"io"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"golang.org/x/net/context"

	"github.com/derWhity/greentable/internal/models"
)

// ScheduleEndpoints is a collection of endpoints to the public schedule views
type ScheduleEndpoints struct {
	Week     endpoint.Endpoint
	Day      endpoint.Endpoint
	Featured endpoint.Endpoint
	List     endpoint.Endpoint
	Calendar endpoint.Endpoint
	Export   endpoint.Endpoint
	Refresh  endpoint.Endpoint
}

// TournamentEndpoints is a collection of endpoints for administrating the tournaments
type TournamentEndpoints struct {
	List     endpoint.Endpoint
	Get      endpoint.Endpoint
	Create   endpoint.Endpoint
	Update   endpoint.Endpoint
	Delete   endpoint.Endpoint
	DateHint endpoint.Endpoint
}

// MenuEndpoints is a collection of endpoints for working with the bar menu
type MenuEndpoints struct {
	Categories endpoint.Endpoint
	List       endpoint.Endpoint
	Get        endpoint.Endpoint
	Create     endpoint.Endpoint
	Update     endpoint.Endpoint
	Delete     endpoint.Endpoint
}

// ContentEndpoints is a collection of endpoints for working with the site content
type ContentEndpoints struct {
	Images            endpoint.Endpoint
	ImageURL          endpoint.Endpoint
	SetImage          endpoint.Endpoint
	DeleteImage       endpoint.Endpoint
	Banners           endpoint.Endpoint
	AllBanners        endpoint.Endpoint
	CreateBanner      endpoint.Endpoint
	UpdateBanner      endpoint.Endpoint
	DeleteBanner      endpoint.Endpoint
	PlaceBannerBefore endpoint.Endpoint
	Champions         endpoint.Endpoint
	GetChampion       endpoint.Endpoint
	CreateChampion    endpoint.Endpoint
	UpdateChampion    endpoint.Endpoint
	DeleteChampion    endpoint.Endpoint
	Upload            endpoint.Endpoint
}

// SessionEndpoints is a collection of endpoints for working with the session service
type SessionEndpoints struct {
	Login  endpoint.Endpoint
	Logout endpoint.Endpoint
	WhoAmI endpoint.Endpoint
}

// ConfigEndpoints is a collection of endpoints for changing the system's configuration
type ConfigEndpoints struct {
	GetDisplay    endpoint.Endpoint
	UpdateDisplay endpoint.Endpoint
}

// The base for all responses which always contains an "ok" property to show if the call was successful and a
// data element containing the result of the request
type basicResponse struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data,omitempty"`
}

type pagingResponse struct {
	Rows uint        `json:"rows"`
	List interface{} `json:"list"`
}

// An iCalendar document
type calendarResponse string

// An XLSX workbook
type workbookResponse []byte

type reorderRequest struct {
	// The entry to move in order
	Entry string
	// The other entry the first one will be placed before
	OtherEntry string
}

// Asks for the URL of a site image, falling back to the given URL if none is stored
type imageURLRequest struct {
	Type     string
	Fallback string
}

type imageURLResponse struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// A request made when logging in
type loginRequest struct {
	User string `json:"user"`
	Pass string `json:"password"`
}

type dateHintRequest struct {
	Text string `json:"text"`
}

// An uploaded file
type uploadRequest struct {
	File io.ReadCloser
	Name string
}

// -- Configuration ----------------------------------------------------------------------------------------------------

// MakeConfigEndpoints creates the endpoints needed to use the configuration service
func MakeConfigEndpoints(s ConfigService) ConfigEndpoints {
	admin := EnsureUserCan(models.PermScheduleManage)
	return ConfigEndpoints{
		GetDisplay:    admin(MakeGetDisplayEndpoint(s)),
		UpdateDisplay: admin(MakeUpdateDisplayEndpoint(s)),
	}
}

// MakeGetDisplayEndpoint returns an endpoint calling the DisplaySettings method of the ConfigService
func MakeGetDisplayEndpoint(s ConfigService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		return basicResponse{true, s.DisplaySettings(ctx)}, nil
	}
}

// MakeUpdateDisplayEndpoint returns an endpoint calling the UpdateDisplaySettings method of the ConfigService
func MakeUpdateDisplayEndpoint(s ConfigService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		settings, ok := request.(models.DisplayConfig)
		if !ok {
			return nil, fmt.Errorf("illegal display settings parameter")
		}
		ret, err := s.UpdateDisplaySettings(ctx, settings)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, ret}, nil
	}
}

// -- Schedule ---------------------------------------------------------------------------------------------------------

// MakeScheduleEndpoints creates the endpoints for the public schedule views
func MakeScheduleEndpoints(s ScheduleService) ScheduleEndpoints {
	admin := EnsureUserCan(models.PermScheduleManage)
	return ScheduleEndpoints{
		Week:     MakeWeekEndpoint(s),
		Day:      MakeDayEndpoint(s),
		Featured: MakeFeaturedEndpoint(s),
		List:     MakeScheduleListEndpoint(s),
		Calendar: MakeCalendarEndpoint(s),
		Export:   admin(MakeExportEndpoint(s)),
		Refresh:  admin(MakeRefreshEndpoint(s)),
	}
}

// MakeWeekEndpoint returns an endpoint calling the Week method of the ScheduleService
func MakeWeekEndpoint(s ScheduleService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		week, err := s.Week(ctx)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, week}, nil
	}
}

// MakeDayEndpoint returns an endpoint calling the Day method of the ScheduleService
func MakeDayEndpoint(s ScheduleService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		date, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal date parameter")
		}
		day, err := s.Day(ctx, date)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, day}, nil
	}
}

// MakeFeaturedEndpoint returns an endpoint calling the Featured method of the ScheduleService
func MakeFeaturedEndpoint(s ScheduleService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		surface, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal surface parameter")
		}
		f, err := s.Featured(ctx, surface)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, f}, nil
	}
}

// MakeScheduleListEndpoint returns an endpoint calling the List method of the ScheduleService
func MakeScheduleListEndpoint(s ScheduleService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		list, err := s.List(ctx)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, list}, nil
	}
}

// MakeCalendarEndpoint returns an endpoint calling the Calendar method of the ScheduleService
func MakeCalendarEndpoint(s ScheduleService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		cal, err := s.Calendar(ctx)
		if err != nil {
			return nil, err
		}
		return calendarResponse(cal), nil
	}
}

// MakeExportEndpoint returns an endpoint calling the Export method of the ScheduleService
func MakeExportEndpoint(s ScheduleService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		data, err := s.Export(ctx)
		if err != nil {
			return nil, err
		}
		return workbookResponse(data), nil
	}
}

// MakeRefreshEndpoint returns an endpoint calling the Refresh method of the ScheduleService
func MakeRefreshEndpoint(s ScheduleService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		snap, err := s.Refresh(ctx)
		if err != nil {
			return nil, MakeErrorWithData(http.StatusServiceUnavailable, ErrCodeRepoError, "The tournament store is not available", err)
		}
		return basicResponse{true, map[string]interface{}{
			"tournaments": len(snap.Tournaments),
			"takenAt":     snap.TakenAt,
		}}, nil
	}
}

// -- Tournaments ------------------------------------------------------------------------------------------------------

// MakeTournamentEndpoints creates the endpoints needed for administrating the tournaments
func MakeTournamentEndpoints(s TournamentService) TournamentEndpoints {
	admin := EnsureUserCan(models.PermScheduleManage)
	return TournamentEndpoints{
		List:     MakeListTournamentsEndpoint(s),
		Get:      MakeGetTournamentEndpoint(s),
		Create:   admin(MakeCreateTournamentEndpoint(s)),
		Update:   admin(MakeUpdateTournamentEndpoint(s)),
		Delete:   admin(MakeDeleteTournamentEndpoint(s)),
		DateHint: admin(MakeDateHintEndpoint(s)),
	}
}

// MakeListTournamentsEndpoint returns an endpoint calling the List method on the provided TournamentService
func MakeListTournamentsEndpoint(s TournamentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		search, ok := request.(Search)
		if !ok {
			return nil, fmt.Errorf("illegal search parameter")
		}
		list, numRows, err := s.List(ctx, &search)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, pagingResponse{numRows, list}}, nil
	}
}

// MakeGetTournamentEndpoint returns an endpoint calling the Get method on the provided TournamentService
func MakeGetTournamentEndpoint(s TournamentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		id, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal tournament ID")
		}
		t, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, t}, nil
	}
}

// MakeCreateTournamentEndpoint returns an endpoint calling the Create method on the provided TournamentService
func MakeCreateTournamentEndpoint(s TournamentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		t, ok := request.(models.Tournament)
		if !ok {
			return nil, fmt.Errorf("illegal tournament parameter")
		}
		created, err := s.Create(ctx, &t)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, created}, nil
	}
}

// MakeUpdateTournamentEndpoint returns an endpoint calling the Update method on the provided TournamentService
func MakeUpdateTournamentEndpoint(s TournamentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		t, ok := request.(models.Tournament)
		if !ok {
			return nil, fmt.Errorf("illegal tournament parameter")
		}
		if err := s.Update(ctx, &t); err != nil {
			return nil, err
		}
		return basicResponse{true, t}, nil
	}
}

// MakeDeleteTournamentEndpoint returns an endpoint calling the Delete method on the provided TournamentService
func MakeDeleteTournamentEndpoint(s TournamentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		id, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal tournament ID")
		}
		if err := s.Delete(ctx, id); err != nil {
			return nil, err
		}
		return basicResponse{true, nil}, nil
	}
}

// MakeDateHintEndpoint returns an endpoint calling the DateHint method on the provided TournamentService
func MakeDateHintEndpoint(s TournamentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req, ok := request.(dateHintRequest)
		if !ok {
			return nil, fmt.Errorf("illegal date hint request")
		}
		hint, err := s.DateHint(ctx, req.Text)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, hint}, nil
	}
}

// -- Menu -------------------------------------------------------------------------------------------------------------

// MakeMenuEndpoints creates the endpoints needed for using the menu service
func MakeMenuEndpoints(s MenuService) MenuEndpoints {
	admin := EnsureUserCan(models.PermContentManage)
	return MenuEndpoints{
		Categories: MakeMenuCategoriesEndpoint(s),
		List:       MakeListMenuItemsEndpoint(s),
		Get:        MakeGetMenuItemEndpoint(s),
		Create:     admin(MakeCreateMenuItemEndpoint(s)),
		Update:     admin(MakeUpdateMenuItemEndpoint(s)),
		Delete:     admin(MakeDeleteMenuItemEndpoint(s)),
	}
}

// MakeMenuCategoriesEndpoint returns an endpoint calling the Categories method on the provided MenuService
func MakeMenuCategoriesEndpoint(s MenuService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		cats, err := s.Categories(ctx)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, cats}, nil
	}
}

// MakeListMenuItemsEndpoint returns an endpoint calling the List method on the provided MenuService
func MakeListMenuItemsEndpoint(s MenuService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		search, ok := request.(Search)
		if !ok {
			return nil, fmt.Errorf("illegal search parameter")
		}
		list, numRows, err := s.List(ctx, &search)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, pagingResponse{numRows, list}}, nil
	}
}

// MakeGetMenuItemEndpoint returns an endpoint calling the Get method on the provided MenuService
func MakeGetMenuItemEndpoint(s MenuService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		id, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal menu item ID")
		}
		item, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, item}, nil
	}
}

// MakeCreateMenuItemEndpoint returns an endpoint calling the Create method on the provided MenuService
func MakeCreateMenuItemEndpoint(s MenuService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		item, ok := request.(models.MenuItem)
		if !ok {
			return nil, fmt.Errorf("illegal menu item parameter")
		}
		created, err := s.Create(ctx, &item)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, created}, nil
	}
}

// MakeUpdateMenuItemEndpoint returns an endpoint calling the Update method on the provided MenuService
func MakeUpdateMenuItemEndpoint(s MenuService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		item, ok := request.(models.MenuItem)
		if !ok {
			return nil, fmt.Errorf("illegal menu item parameter")
		}
		if err := s.Update(ctx, &item); err != nil {
			return nil, err
		}
		return basicResponse{true, item}, nil
	}
}

// MakeDeleteMenuItemEndpoint returns an endpoint calling the Delete method on the provided MenuService
func MakeDeleteMenuItemEndpoint(s MenuService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		id, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal menu item ID")
		}
		if err := s.Delete(ctx, id); err != nil {
			return nil, err
		}
		return basicResponse{true, nil}, nil
	}
}

// -- Content ----------------------------------------------------------------------------------------------------------

// MakeContentEndpoints creates the endpoints needed for using the content service
func MakeContentEndpoints(s ContentService) ContentEndpoints {
	admin := EnsureUserCan(models.PermContentManage)
	return ContentEndpoints{
		Images:            MakeImagesEndpoint(s),
		ImageURL:          MakeImageURLEndpoint(s),
		SetImage:          admin(MakeSetImageEndpoint(s)),
		DeleteImage:       admin(MakeDeleteImageEndpoint(s)),
		Banners:           MakeBannersEndpoint(s, true),
		AllBanners:        admin(MakeBannersEndpoint(s, false)),
		CreateBanner:      admin(MakeCreateBannerEndpoint(s)),
		UpdateBanner:      admin(MakeUpdateBannerEndpoint(s)),
		DeleteBanner:      admin(MakeDeleteBannerEndpoint(s)),
		PlaceBannerBefore: admin(MakePlaceBannerBeforeEndpoint(s)),
		Champions:         MakeChampionsEndpoint(s),
		GetChampion:       MakeGetChampionEndpoint(s),
		CreateChampion:    admin(MakeCreateChampionEndpoint(s)),
		UpdateChampion:    admin(MakeUpdateChampionEndpoint(s)),
		DeleteChampion:    admin(MakeDeleteChampionEndpoint(s)),
		Upload:            admin(MakeUploadEndpoint(s)),
	}
}

// MakeImagesEndpoint returns an endpoint calling the Images method on the provided ContentService
func MakeImagesEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		list, err := s.Images(ctx)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, list}, nil
	}
}

// MakeImageURLEndpoint returns an endpoint calling the ImageURL method on the provided ContentService
func MakeImageURLEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req, ok := request.(imageURLRequest)
		if !ok {
			return nil, fmt.Errorf("illegal image URL request")
		}
		return basicResponse{true, imageURLResponse{
			Type: req.Type,
			URL:  s.ImageURL(ctx, req.Type, req.Fallback),
		}}, nil
	}
}

// MakeSetImageEndpoint returns an endpoint calling the SetImage method on the provided ContentService
func MakeSetImageEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		img, ok := request.(models.SiteImage)
		if !ok {
			return nil, fmt.Errorf("illegal site image parameter")
		}
		stored, err := s.SetImage(ctx, &img)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, stored}, nil
	}
}

// MakeDeleteImageEndpoint returns an endpoint calling the DeleteImage method on the provided ContentService
func MakeDeleteImageEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		imageType, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal image type")
		}
		if err := s.DeleteImage(ctx, imageType); err != nil {
			return nil, err
		}
		return basicResponse{true, nil}, nil
	}
}

// MakeBannersEndpoint returns an endpoint calling the Banners method on the provided ContentService
func MakeBannersEndpoint(s ContentService, activeOnly bool) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		list, err := s.Banners(ctx, activeOnly)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, list}, nil
	}
}

// MakeCreateBannerEndpoint returns an endpoint calling the CreateBanner method on the provided ContentService
func MakeCreateBannerEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		b, ok := request.(models.Banner)
		if !ok {
			return nil, fmt.Errorf("illegal banner parameter")
		}
		created, err := s.CreateBanner(ctx, &b)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, created}, nil
	}
}

// MakeUpdateBannerEndpoint returns an endpoint calling the UpdateBanner method on the provided ContentService
func MakeUpdateBannerEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		b, ok := request.(models.Banner)
		if !ok {
			return nil, fmt.Errorf("illegal banner parameter")
		}
		if err := s.UpdateBanner(ctx, &b); err != nil {
			return nil, err
		}
		return basicResponse{true, nil}, nil
	}
}

// MakeDeleteBannerEndpoint returns an endpoint calling the DeleteBanner method on the provided ContentService
func MakeDeleteBannerEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		id, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal banner ID")
		}
		if err := s.DeleteBanner(ctx, id); err != nil {
			return nil, err
		}
		return basicResponse{true, nil}, nil
	}
}

// MakePlaceBannerBeforeEndpoint returns an endpoint calling the PlaceBannerBefore method on the provided ContentService
func MakePlaceBannerBeforeEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req, ok := request.(reorderRequest)
		if !ok {
			return nil, fmt.Errorf("illegal reorder request")
		}
		if err := s.PlaceBannerBefore(ctx, req.Entry, req.OtherEntry); err != nil {
			return nil, err
		}
		return basicResponse{true, nil}, nil
	}
}

// MakeChampionsEndpoint returns an endpoint calling the Champions method on the provided ContentService
func MakeChampionsEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		list, err := s.Champions(ctx)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, list}, nil
	}
}

// MakeGetChampionEndpoint returns an endpoint calling the GetChampion method on the provided ContentService
func MakeGetChampionEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		id, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal champion ID")
		}
		c, err := s.GetChampion(ctx, id)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, c}, nil
	}
}

// MakeCreateChampionEndpoint returns an endpoint calling the CreateChampion method on the provided ContentService
func MakeCreateChampionEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		c, ok := request.(models.Champion)
		if !ok {
			return nil, fmt.Errorf("illegal champion parameter")
		}
		created, err := s.CreateChampion(ctx, &c)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, created}, nil
	}
}

// MakeUpdateChampionEndpoint returns an endpoint calling the UpdateChampion method on the provided ContentService
func MakeUpdateChampionEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		c, ok := request.(models.Champion)
		if !ok {
			return nil, fmt.Errorf("illegal champion parameter")
		}
		if err := s.UpdateChampion(ctx, &c); err != nil {
			return nil, err
		}
		return basicResponse{true, c}, nil
	}
}

// MakeDeleteChampionEndpoint returns an endpoint calling the DeleteChampion method on the provided ContentService
func MakeDeleteChampionEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		id, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal champion ID")
		}
		if err := s.DeleteChampion(ctx, id); err != nil {
			return nil, err
		}
		return basicResponse{true, nil}, nil
	}
}

// MakeUploadEndpoint returns an endpoint calling the Upload method on the provided ContentService
func MakeUploadEndpoint(s ContentService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req, ok := request.(uploadRequest)
		if !ok {
			return nil, fmt.Errorf("illegal upload request")
		}
		defer req.File.Close()
		url, err := s.Upload(ctx, req.File, req.Name)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, map[string]string{"url": url}}, nil
	}
}

// -- Sessions ---------------------------------------------------------------------------------------------------------

// MakeSessionEndpoints builds the endpoints needed to communicate with the Session Service
func MakeSessionEndpoints(s SessionService) SessionEndpoints {
	return SessionEndpoints{
		Login:  makeLoginEndpoint(s),
		Logout: makeLogoutEndpoint(s),
		WhoAmI: makeWhoAmIEndpoint(s),
	}
}

func makeLoginEndpoint(s SessionService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		se, ok := request.(loginRequest)
		if !ok {
			return nil, fmt.Errorf("illegal login request")
		}
		si, err := s.Login(ctx, se.User, se.Pass)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, si}, nil
	}
}

func makeLogoutEndpoint(s SessionService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		id, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal session token")
		}
		err := s.Logout(ctx, id)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, nil}, nil
	}
}

func makeWhoAmIEndpoint(s SessionService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		id, ok := request.(string)
		if !ok {
			return nil, fmt.Errorf("illegal session token")
		}
		si, err := s.WhoAmI(ctx, id)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, si}, nil
	}
}
