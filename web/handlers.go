package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/chasen-bettinger/fantasy-analysis/db"
	"github.com/chasen-bettinger/fantasy-analysis/model"
	"github.com/unrolled/render"
)

func rootHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "fantasy analysis query API")
	}
}

func summaryHandler(database db.DB, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := database.DatabaseSummary(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorBody(err))
			return
		}
		render.JSON(w, http.StatusOK, summary)
	}
}

func draftPicksHandler(database db.DB, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		round, err := optionalIntParam(r, "round")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err))
			return
		}
		season, err := optionalIntParam(r, "season")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err))
			return
		}

		picks, err := database.DraftPicksByRound(r.Context(), round, season)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorBody(err))
			return
		}
		render.JSON(w, http.StatusOK, picks)
	}
}

func picksByPositionHandler(database db.DB, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pos := model.ParsePosition(r.URL.Query().Get("pos"))
		if pos == model.POS_UNKNOWN {
			render.JSON(w, http.StatusBadRequest,
				errorBody(fmt.Errorf("unknown position: %q", r.URL.Query().Get("pos"))))
			return
		}
		season, err := optionalIntParam(r, "season")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err))
			return
		}

		picks, err := database.PicksByPosition(r.Context(), pos, season)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorBody(err))
			return
		}
		render.JSON(w, http.StatusOK, picks)
	}
}

func teamDraftSummaryHandler(database db.DB, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := optionalIntParam(r, "season")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err))
			return
		}

		teams, err := database.TeamDraftSummary(r.Context(), season)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorBody(err))
			return
		}
		render.JSON(w, http.StatusOK, teams)
	}
}

func positionTrendsHandler(database db.DB, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := optionalIntParam(r, "season")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err))
			return
		}

		trends, err := database.PositionDraftTrends(r.Context(), season)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorBody(err))
			return
		}
		render.JSON(w, http.StatusOK, trends)
	}
}

func positionScarcityHandler(database db.DB, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := optionalIntParam(r, "season")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err))
			return
		}

		scarcity, err := database.PositionScarcity(r.Context(), season)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorBody(err))
			return
		}
		render.JSON(w, http.StatusOK, scarcity)
	}
}

func gamesByWeekHandler(database db.DB, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := optionalIntParam(r, "week")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err))
			return
		}
		season, err := optionalIntParam(r, "season")
		if err != nil {
			render.JSON(w, http.StatusBadRequest, errorBody(err))
			return
		}

		games, err := database.GamesByWeek(r.Context(), week, season)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorBody(err))
			return
		}
		render.JSON(w, http.StatusOK, games)
	}
}

// optionalIntParam returns nil when the query parameter is absent.
func optionalIntParam(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %v", name, err)
	}
	return &v, nil
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}
