package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	barberRepo "barberly/database/repository/barber"
	"barberly/models"
	"barberly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BarberHandler serves barber lookup and search.
type BarberHandler struct {
	Repo  barberRepo.BarberRepository
	Cache *redis.Client
}

// NewBarberHandler creates a new BarberHandler instance.
func NewBarberHandler(repo barberRepo.BarberRepository, cache *redis.Client) *BarberHandler {
	return &BarberHandler{Repo: repo, Cache: cache}
}

// GetBarberHandler answers both lookups by id and filtered searches. The
// response is always a collection; an id lookup that matches nothing
// yields an empty one.
func (h *BarberHandler) GetBarberHandler(c *gin.Context) {
	logger := getLogger(c)

	if id := c.Query("id"); id != "" {
		barber, err := h.getByIDCached(c, id)
		if err != nil {
			logger.Error("Failed to fetch barber", zap.String("id", id), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch barber", err.Error())
			return
		}
		if barber == nil {
			c.JSON(http.StatusOK, []models.Barber{})
			return
		}
		c.JSON(http.StatusOK, []models.Barber{*barber})
		return
	}

	filter, err := filterFromQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}

	barbers, err := h.Repo.Search(filter)
	if err != nil {
		logger.Error("Barber search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to search barbers", err.Error())
		return
	}
	c.JSON(http.StatusOK, barbers)
}

// getByIDCached consults the Redis profile cache before the repository.
func (h *BarberHandler) getByIDCached(ctx context.Context, id string) (*models.Barber, error) {
	key := utils.BarberCachePrefix + id

	if h.Cache != nil {
		if data, err := h.Cache.Get(ctx, key).Bytes(); err == nil {
			var barber models.Barber
			if json.Unmarshal(data, &barber) == nil {
				return &barber, nil
			}
		}
	}

	barber, err := h.Repo.GetByID(id)
	if err != nil || barber == nil {
		return barber, err
	}

	if h.Cache != nil {
		if data, err := json.Marshal(barber); err == nil {
			h.Cache.Set(ctx, key, data, utils.BarberCacheTTL)
		}
	}
	return barber, nil
}

// filterFromQuery decodes the filter query parameters. Absent parameters
// keep their "no constraint" defaults.
func filterFromQuery(c *gin.Context) (models.BarberFilter, error) {
	filter := models.DefaultBarberFilter()

	filter.Name = c.Query("name")
	filter.Hairstyle = c.Query("hairstyles")
	filter.Neighborhood = c.Query("location")

	if v := c.Query("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MinRating = rating
	}
	if v := c.Query("cost"); v != "" {
		cost, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return filter, err
		}
		filter.MaxCost = cost
	}
	if v := c.Query("gender"); v != "" {
		filter.Gender = v
	}
	if v := c.Query("will_travel"); v != "" {
		travels, err := strconv.ParseBool(v)
		if err != nil {
			return filter, err
		}
		filter.WillTravel = &travels
	}
	return filter, nil
}
