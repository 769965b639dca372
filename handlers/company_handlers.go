package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// CreateCompany handles the creation of a new company
func CreateCompany(c *gin.Context) {
	var request models.CreateCompanyRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	company, err := handlerServices.CompanyService.CreateCompany(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, company)
}

// GetCompany handles retrieving a company by id
func GetCompany(c *gin.Context) {
	company, err := handlerServices.CompanyService.GetCompany(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, company)
}

// UpdateCompany handles updating a company's profile
func UpdateCompany(c *gin.Context) {
	var request models.UpdateCompanyRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	company, err := handlerServices.CompanyService.UpdateCompany(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, company)
}

// AddTopup handles crediting a company balance
func AddTopup(c *gin.Context) {
	var request models.TopupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	balance, err := handlerServices.CompanyService.AddTopup(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.BalanceResponse{Balance: balance})
}
