package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/skiproute/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type solveAPI struct {
	solverService SolverService
	log           *zap.Logger
}

func New(solverService SolverService, log *zap.Logger) *solveAPI {
	return &solveAPI{
		solverService: solverService,
		log:           log,
	}
}

func (api *solveAPI) Routes(group *helper.RouteGroup) {
	group.POST("/solve", api.solve)
}

func (api *solveAPI) solve(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request solveRequest

	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&request); err != nil {
		api.BadRequestResponse(w, r, errors.New("body must be valid json"))
		return
	}

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
		return
	}

	speed, delay, edge := request.overrides()
	cost, stops, pathPolyline, err := api.solverService.Solve(request.toCheckpoints(), speed, delay, edge)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewSolveResponse(cost, stops,
		pathPolyline)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
