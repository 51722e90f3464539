package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"donation-api/internal/service"
	resp "donation-api/internal/transport/http/response"
)

type DonationHandler struct {
	donations *service.DonationService
	export    *service.ExportService
	log       *zap.Logger
}

func NewDonationHandler(donations *service.DonationService, export *service.ExportService, log *zap.Logger) *DonationHandler {
	return &DonationHandler{donations: donations, export: export, log: log}
}

type createDonationIn struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Region   string `json:"region"`
	District string `json:"district"`
	Category string `json:"category"`
}

// Create is the public submission endpoint. Field content is the form's
// responsibility; only malformed JSON is rejected here.
func (h *DonationHandler) Create(c *gin.Context) {
	var in createDonationIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.donations.Submit(c.Request.Context(), service.SubmitInput{
		FullName: in.FullName,
		Phone:    in.Phone,
		Region:   in.Region,
		District: in.District,
		Category: in.Category,
	})
	if err != nil {
		h.log.Error("create donation", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, resp.MsgServerError)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": resp.MsgDonationCreated})
}

func (h *DonationHandler) List(c *gin.Context) {
	list, err := h.donations.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("list donations", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, resp.MsgServerError)
		return
	}
	c.JSON(http.StatusOK, list)
}

type updateStatusIn struct {
	Status string `json:"status"`
}

func (h *DonationHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.Error(c, http.StatusBadRequest, "invalid id")
		return
	}
	var in updateStatusIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.donations.UpdateStatus(c.Request.Context(), uint(id), in.Status); err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			resp.Error(c, http.StatusBadRequest, resp.MsgInvalidStatus)
			return
		}
		h.log.Error("update donation status", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, resp.MsgServerError)
		return
	}
	resp.Message(c, http.StatusOK, resp.MsgStatusUpdated)
}

func (h *DonationHandler) Stats(c *gin.Context) {
	st, err := h.donations.Stats(c.Request.Context())
	if err != nil {
		h.log.Error("donation stats", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, resp.MsgServerError)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *DonationHandler) Export(c *gin.Context) {
	b, err := h.export.ExportAll(c.Request.Context())
	if err != nil {
		h.log.Error("export donations", zap.Error(err))
		resp.Error(c, http.StatusInternalServerError, resp.MsgServerError)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+service.ExportFilename)
	c.Data(http.StatusOK, service.ExportContentType, b)
}
