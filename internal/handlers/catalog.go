package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/middleware"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/services"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/session"
	"github.com/carlosleonnard/fisionomia-social-hub-sub000/internal/taxonomy"
)

type CatalogHandler struct {
	catalog *services.Catalog
}

func NewCatalogHandler(catalog *services.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type CreateSubjectRequest struct {
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category"`
	Anonymous bool   `json:"anonymous"`
}

type UpdateSubjectRequest struct {
	Name      string `json:"name" binding:"required"`
	Category  string `json:"category"`
	Anonymous bool   `json:"anonymous"`
}

type CastVoteRequest struct {
	Axis  string `json:"axis" binding:"required"`
	Value string `json:"value" binding:"required"`
}

type SessionSelectionRequest struct {
	Level int    `json:"level" binding:"min=0,max=2"`
	Value string `json:"value" binding:"required"`
}

func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	voterID, ok := voterFromContext(c)
	if !ok {
		return
	}

	id, err := h.catalog.CreateSubject(c.Request.Context(), voterID, req.Name, req.Category, req.Anonymous)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subject_id": id})
}

func (h *CatalogHandler) GetSubjects(c *gin.Context) {
	subjects, err := h.catalog.GetSubjects(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

func (h *CatalogHandler) GetSubjectByID(c *gin.Context) {
	id, ok := subjectIDParam(c)
	if !ok {
		return
	}

	subject, err := h.catalog.GetSubjectByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subject": subject})
}

func (h *CatalogHandler) UpdateSubject(c *gin.Context) {
	var req UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	id, ok := subjectIDParam(c)
	if !ok {
		return
	}
	voterID, ok := voterFromContext(c)
	if !ok {
		return
	}

	if err := h.catalog.UpdateSubject(c.Request.Context(), id, req.Name, req.Category, req.Anonymous, voterID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *CatalogHandler) DeleteSubject(c *gin.Context) {
	id, ok := subjectIDParam(c)
	if !ok {
		return
	}
	voterID, ok := voterFromContext(c)
	if !ok {
		return
	}

	if err := h.catalog.DeleteSubject(c.Request.Context(), id, voterID); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *CatalogHandler) CastVote(c *gin.Context) {
	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	id, ok := subjectIDParam(c)
	if !ok {
		return
	}
	voterID, ok := voterFromContext(c)
	if !ok {
		return
	}

	if err := h.catalog.CastVote(c.Request.Context(), voterID, id, req.Axis, req.Value); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "voted"})
}

func (h *CatalogHandler) GetMyVotes(c *gin.Context) {
	id, ok := subjectIDParam(c)
	if !ok {
		return
	}
	voterID, ok := voterFromContext(c)
	if !ok {
		return
	}

	votes, err := h.catalog.VotesByVoter(c.Request.Context(), voterID, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"votes": votes})
}

func (h *CatalogHandler) Aggregate(c *gin.Context) {
	id, ok := subjectIDParam(c)
	if !ok {
		return
	}

	entries, err := h.catalog.Aggregate(c.Request.Context(), id, c.Param("axis"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"axis": c.Param("axis"), "results": entries})
}

func (h *CatalogHandler) MostVoted(c *gin.Context) {
	id, ok := subjectIDParam(c)
	if !ok {
		return
	}

	value, found, err := h.catalog.MostVoted(c.Request.Context(), id, c.Param("axis"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"axis": c.Param("axis"), "value": value, "found": found})
}

func (h *CatalogHandler) UniqueVoterCount(c *gin.Context) {
	id, ok := subjectIDParam(c)
	if !ok {
		return
	}

	count, err := h.catalog.UniqueVoterCount(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unique_voters": count})
}

func (h *CatalogHandler) ListSubjectsByRegion(c *gin.Context) {
	subjects, err := h.catalog.ListSubjectsByRegion(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"region": c.Param("key"), "subjects": subjects})
}

func (h *CatalogHandler) GetAxes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"axes": taxonomy.Axes(), "regions": taxonomy.RegionKeys()})
}

func (h *CatalogHandler) GetAxisTree(c *gin.Context) {
	tree, err := taxonomy.Tree(c.Param("axis"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown axis"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"axis": c.Param("axis"), "tree": tree})
}

func (h *CatalogHandler) GetAxisValues(c *gin.Context) {
	values, err := taxonomy.Values(c.Param("axis"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown axis"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"axis": c.Param("axis"), "values": values})
}

func (h *CatalogHandler) GetSession(c *gin.Context) {
	id, ok := subjectIDParam(c)
	if !ok {
		return
	}
	voterID, ok := voterFromContext(c)
	if !ok {
		return
	}

	view, err := h.catalog.GetSession(c.Request.Context(), voterID, id, c.Param("family"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": view})
}

func (h *CatalogHandler) SetSessionSelection(c *gin.Context) {
	var req SessionSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	id, ok := subjectIDParam(c)
	if !ok {
		return
	}
	voterID, ok := voterFromContext(c)
	if !ok {
		return
	}

	view, err := h.catalog.SetSessionSelection(c.Request.Context(), voterID, id, c.Param("family"), req.Level, req.Value)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": view})
}

func (h *CatalogHandler) CommitSession(c *gin.Context) {
	id, ok := subjectIDParam(c)
	if !ok {
		return
	}
	voterID, ok := voterFromContext(c)
	if !ok {
		return
	}

	if err := h.catalog.CommitSession(c.Request.Context(), voterID, id, c.Param("family")); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "committed"})
}

func (h *CatalogHandler) DiscardSession(c *gin.Context) {
	id, ok := subjectIDParam(c)
	if !ok {
		return
	}
	voterID, ok := voterFromContext(c)
	if !ok {
		return
	}

	if err := h.catalog.DiscardSession(c.Request.Context(), voterID, id, c.Param("family")); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "discarded"})
}

func (h *CatalogHandler) GetLogs(c *gin.Context) {
	logs, err := h.catalog.GetLogs(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func subjectIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return uuid.Nil, false
	}
	return id, true
}

func voterFromContext(c *gin.Context) (int64, bool) {
	voterIDValue, exists := c.Get(middleware.ContextVoterID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return 0, false
	}

	voterID, ok := voterIDValue.(int64)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "invalid voter id in context"})
		return 0, false
	}

	return voterID, true
}

func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case services.IsSubjectNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "subject not found"})
	case errors.Is(err, services.ErrDuplicateSelection):
		c.JSON(http.StatusConflict, gin.H{"error": "selection duplicates an ancestor value"})
	case errors.Is(err, services.ErrInvalidClassification),
		errors.Is(err, services.ErrValidation),
		errors.Is(err, session.ErrInvalidValue),
		errors.Is(err, session.ErrMissingAncestor):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
