package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tournevent/storelocator/internal/store"
	"github.com/tournevent/storelocator/pkg/freight"
	"github.com/tournevent/storelocator/pkg/geoapi"
	"go.uber.org/zap"
)

const (
	msgCEPRequired     = "CEP é obrigatório"
	msgCEPInvalid      = "CEP inválido"
	msgCEPNotFound     = "CEP não encontrado"
	msgStoreNotFound   = "Loja não encontrada"
	msgInternal        = "Erro ao processar a requisição"
	msgRouteNotFound   = "Não foi possível calcular a rota"
	msgNoStoresNearby  = "Nenhuma loja encontrada no raio informado"
	msgNoStoresInState = "Nenhuma loja encontrada para este estado."
	msgNameCEPRequired = "Nome e CEP são obrigatórios"
	msgStoreCreated    = "Loja inserida com sucesso"
	msgStoreUpdated    = "Dados atualizados com sucesso"
	msgStoreDeleted    = "Loja deletada com sucesso"
	msgNoFields        = "Pelo menos um campo deve ser fornecido para atualização"
	msgInvalidID       = "ID inválido"
	msgFeeParams       = "Parâmetros peso e distancia são obrigatórios"
	msgNoFeeTier       = "Nenhuma faixa de frete aplicável"
)

// handleFindByCEP serves GET /store?cep=, the full enrichment flow.
func (s *Server) handleFindByCEP(c *gin.Context) {
	cep := c.Query("cep")
	if cep == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgCEPRequired})
		return
	}

	result, err := s.locator.FindByCEP(c.Request.Context(), cep)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleNearby serves GET /lojas?cep=, the haversine flow.
func (s *Server) handleNearby(c *gin.Context) {
	cep := c.Query("cep")
	if cep == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgCEPRequired})
		return
	}

	radiusKm, _ := strconv.ParseFloat(c.Query("raio"), 64)

	stores, err := s.locator.FindNearby(c.Request.Context(), cep, radiusKm)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if len(stores) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": msgNoStoresNearby})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lojas": stores})
}

func (s *Server) handleGet(c *gin.Context) {
	id, ok := s.storeID(c)
	if !ok {
		return
	}

	found, err := s.locator.GetStore(c.Request.Context(), id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, found)
}

func (s *Server) handleListByState(c *gin.Context) {
	limit, offset := pagination(c)

	page, err := s.locator.ListByState(c.Request.Context(), c.Param("state"), limit, offset)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if len(page.Stores) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": msgNoStoresInState})
		return
	}

	c.JSON(http.StatusOK, page)
}

func (s *Server) handleListAll(c *gin.Context) {
	limit, offset := pagination(c)

	page, err := s.locator.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

type createStoreRequest struct {
	Nome string `json:"nome"`
	CEP  string `json:"cep"`
}

func (s *Server) handleCreate(c *gin.Context) {
	var req createStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Nome == "" || req.CEP == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgNameCEPRequired})
		return
	}

	created, err := s.locator.CreateStore(c.Request.Context(), req.Nome, req.CEP)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msgStoreCreated, "id": created.ID})
}

func (s *Server) handleUpdate(c *gin.Context) {
	id, ok := s.storeID(c)
	if !ok {
		return
	}

	var fields store.UpdateFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgNoFields})
		return
	}

	if _, err := s.locator.UpdateStore(c.Request.Context(), id, fields); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgStoreUpdated})
}

func (s *Server) handleDelete(c *gin.Context) {
	id, ok := s.storeID(c)
	if !ok {
		return
	}

	if err := s.locator.DeleteStore(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgStoreDeleted})
}

// handleFee serves GET /store/fee?peso=&distancia=, the local fee table.
func (s *Server) handleFee(c *gin.Context) {
	weightKg, errW := strconv.ParseFloat(c.Query("peso"), 64)
	distanceKm, errD := strconv.ParseFloat(c.Query("distancia"), 64)
	if errW != nil || errD != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgFeeParams})
		return
	}

	option, err := s.locator.EstimateFee(weightKg, distanceKm)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, option)
}

// respondError maps domain errors to HTTP statuses. Anything that is not
// a validation or not-found outcome surfaces as an opaque 500; the detail
// is logged, never returned.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, geoapi.ErrInvalidCEP):
		c.JSON(http.StatusBadRequest, gin.H{"message": msgCEPInvalid})

	case errors.Is(err, geoapi.ErrCEPNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": msgCEPNotFound})

	case errors.Is(err, geoapi.ErrNoCoordinates), errors.Is(err, geoapi.ErrNoRoute):
		c.JSON(http.StatusNotFound, gin.H{"message": msgRouteNotFound})

	case errors.Is(err, store.ErrStoreNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": msgStoreNotFound})

	case errors.Is(err, store.ErrNoFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": msgNoFields})

	case errors.Is(err, freight.ErrNoMatchingTier):
		c.JSON(http.StatusNotFound, gin.H{"message": msgNoFeeTier})

	default:
		s.recordUpstreamError(err)
		s.logger.Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": msgInternal})
	}
}

func (s *Server) recordUpstreamError(err error) {
	var geoErr *geoapi.Error
	if errors.As(err, &geoErr) {
		s.metrics.RecordUpstreamError(geoErr.Service, geoErr.Code)
		return
	}

	var rateErr *freight.Error
	if errors.As(err, &rateErr) {
		s.metrics.RecordUpstreamError(rateErr.Provider, rateErr.Code)
	}
}

func (s *Server) storeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidID})
		return 0, false
	}
	return uint(id), true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
