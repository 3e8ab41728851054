package handler

import (
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// Revenue
// @Summary      Restaurant revenue
// @Description  Sums paid orders per UTC day or month over the closed range [from, to]
// @Tags         restaurants
// @Security     BearerAuth
// @Produce      json
// @Param        restaurant_id  path      string  true   "Restaurant ID"
// @Param        from           query     string  true   "First day, YYYY-MM-DD"
// @Param        to             query     string  true   "Last day, YYYY-MM-DD"
// @Param        granularity    query     string  false  "day (default) or month"
// @Success      200            {array}   RevenueBucket
// @Failure      400            {object}  utils.ValidationErrorResponse
// @Failure      403            {object}  utils.ErrorResponse
// @Router       /restaurants/{restaurant_id}/revenue [get]
func (h *HTTPHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	params := RevenueParams{
		From:        q.Get("from"),
		To:          q.Get("to"),
		Granularity: q.Get("granularity"),
	}
	if err := h.validate.Struct(params); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	// both already passed the datetime check
	from, _ := time.Parse(time.DateOnly, params.From)
	to, _ := time.Parse(time.DateOnly, params.To)

	granularity := entities.GranularityDay
	if params.Granularity != "" {
		granularity = entities.Granularity(params.Granularity)
	}

	buckets, err := h.revenue.Revenue(r.Context(), actor, entities.RevenueQuery{
		RestaurantID: chi.URLParam(r, "restaurant_id"),
		Start:        from,
		End:          to,
		Granularity:  granularity,
	})
	if err != nil {
		h.writeError(w, r, "aggregate revenue", err)
		return
	}

	utils.WriteJSON(w, RevenueEntityToJSON(buckets), http.StatusOK)
}
