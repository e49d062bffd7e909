package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/Monocerum/escolar/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/computeRoutes", api.computeRoutes)
	group.GET("/computeRoutesFromCoordinates", api.computeRoutesFromCoordinates)
	group.GET("/evacuationPlan", api.evacuationPlan)
	group.GET("/places", api.places)
}

// computeRoutes
//
//	@Summary		primary and alternative evacuation route between two campus places
//	@Tags			routing
//	@Produce		json
//	@Param			origin		query		string	true	"origin place id"
//	@Param			destination	query		string	false	"destination place id, defaults to the evacuation area"
//	@Success		200			{object}	routesResponse
//	@Failure		400			{object}	errorResponse
//	@Failure		404			{object}	errorResponse
//	@Router			/computeRoutes [get]
func (api *routingAPI) computeRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := computeRoutesRequest{
		Origin:      query.Get("origin"),
		Destination: query.Get("destination"),
	}
	if !api.validate(w, r, request) {
		return
	}

	routes, err := api.routingService.FindRoutes(r.Context(), request.Origin, request.Destination)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRoutesResponse(routes)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// computeRoutesFromCoordinates
//
//	@Summary		evacuation routes from the campus place nearest to a coordinate
//	@Tags			routing
//	@Produce		json
//	@Param			lat			query		number	true	"latitude"
//	@Param			lon			query		number	true	"longitude"
//	@Param			destination	query		string	false	"destination place id, defaults to the evacuation area"
//	@Success		200			{object}	routesResponse
//	@Failure		400			{object}	errorResponse
//	@Failure		404			{object}	errorResponse
//	@Router			/computeRoutesFromCoordinates [get]
func (api *routingAPI) computeRoutesFromCoordinates(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request coordinatesRoutesRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	request.Destination = query.Get("destination")
	if !api.validate(w, r, request) {
		return
	}

	_, routes, err := api.routingService.FindRoutesFromCoordinates(r.Context(), request.Lat, request.Lon,
		request.Destination)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRoutesResponse(routes)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// evacuationPlan
//
//	@Summary		evacuation routes of every building and exit
//	@Tags			routing
//	@Produce		json
//	@Param			destination	query		string	false	"destination place id, defaults to the evacuation area"
//	@Success		200			{array}		evacuationPlanEntryResponse
//	@Failure		404			{object}	errorResponse
//	@Router			/evacuationPlan [get]
func (api *routingAPI) evacuationPlan(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := evacuationPlanRequest{Destination: r.URL.Query().Get("destination")}
	if !api.validate(w, r, request) {
		return
	}

	entries, err := api.routingService.EvacuationPlan(r.Context(), request.Destination)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewEvacuationPlanResponse(entries)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// places
//
//	@Summary		campus places, optionally filtered by class
//	@Tags			places
//	@Produce		json
//	@Param			class	query		[]string	false	"place class (bn, en, dn, gn, in, lin, min)"
//	@Success		200		{array}		placeResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/places [get]
func (api *routingAPI) places(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	request := placesRequest{Classes: r.URL.Query()["class"]}
	if !api.validate(w, r, request) {
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewPlacesResponse(api.routingService.Places(request.Classes...))},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// validate writes a 400 response with the translated validation errors when request is invalid.
func (api *routingAPI) validate(w http.ResponseWriter, r *http.Request, request interface{}) bool {
	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return false
	}
	return true
}
