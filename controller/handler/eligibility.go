package handler

import (
	"github.com/BubsLB/airdropbreakdown/controller/respond"
	"github.com/BubsLB/airdropbreakdown/service/dataset_service"
	"github.com/BubsLB/airdropbreakdown/service/eligibility_service"

	"github.com/gin-gonic/gin"
)

// EligibilityHandler eligibility check handler
type EligibilityHandler struct {
	checkService *eligibility_service.CheckService
	loader       *dataset_service.Loader
}

// NewEligibilityHandler create eligibility handler instance
func NewEligibilityHandler(checkService *eligibility_service.CheckService, loader *dataset_service.Loader) *EligibilityHandler {
	return &EligibilityHandler{
		checkService: checkService,
		loader:       loader,
	}
}

// CheckRequest eligibility check request body
type CheckRequest struct {
	Address string `json:"address" example:"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"`
}

// GetEligibility check an address given in the path
// @Summary      Check airdrop eligibility
// @Description  Validate the address and look up its allocation
// @Tags         Eligibility
// @Produce      json
// @Param        address  path      string  true  "Wallet address"
// @Success      200      {object}  respond.Response{data=respond.EligibilityResponse}
// @Failure      400      {object}  respond.Response{data=respond.EligibilityResponse}
// @Failure      503      {object}  respond.Response{data=respond.EligibilityResponse}
// @Router       /eligibility/{address} [get]
func (h *EligibilityHandler) GetEligibility(c *gin.Context) {
	h.check(c, c.Param("address"))
}

// PostCheck check an address given in the request body
// @Summary      Check airdrop eligibility
// @Description  Same as GET /eligibility/{address}, for form submissions
// @Tags         Eligibility
// @Accept       json
// @Produce      json
// @Param        request  body      CheckRequest  true  "Address to check"
// @Success      200      {object}  respond.Response{data=respond.EligibilityResponse}
// @Failure      400      {object}  respond.Response{data=respond.EligibilityResponse}
// @Failure      503      {object}  respond.Response{data=respond.EligibilityResponse}
// @Router       /eligibility/check [post]
func (h *EligibilityHandler) PostCheck(c *gin.Context) {
	var req CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.InvalidParam(c, "Invalid request body")
		return
	}
	h.check(c, req.Address)
}

func (h *EligibilityHandler) check(c *gin.Context, address string) {
	result := h.checkService.Check(address)
	data := respond.ToEligibilityResponse(result)

	switch result.Kind {
	case eligibility_service.KindEligible, eligibility_service.KindNotEligible:
		respond.Success(c, data)
	case eligibility_service.KindInvalidInput:
		respond.InvalidParamWithData(c, result.Message, data)
	default:
		respond.ServiceUnavailable(c, result.Message, data)
	}
}

// ListSchemes accepted address formats
// @Summary      List accepted address formats
// @Tags         Eligibility
// @Produce      json
// @Success      200  {object}  respond.Response{data=[]respond.SchemeResponse}
// @Router       /schemes [get]
func (h *EligibilityHandler) ListSchemes(c *gin.Context) {
	respond.Success(c, respond.ToSchemeList(h.checkService.Schemes()))
}

// GetStatus dataset loader status
// @Summary      Dataset status
// @Tags         Eligibility
// @Produce      json
// @Success      200  {object}  respond.Response{data=respond.DatasetStatusResponse}
// @Router       /status [get]
func (h *EligibilityHandler) GetStatus(c *gin.Context) {
	respond.Success(c, respond.ToDatasetStatusResponse(h.loader.Status()))
}
