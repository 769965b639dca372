package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// CreateFoodSummary records a food summary and settles it: the company is
// charged the bread cost and the remainder is split across the members who
// didn't bring food, weighted by hosted guests.
func CreateFoodSummary(c *gin.Context) {
	var request models.CreateFoodSummaryRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	response, err := handlerServices.FoodSummaryService.CreateFoodSummary(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, response)
}

// ListFoodSummaries handles retrieving all food summaries for a company
func ListFoodSummaries(c *gin.Context) {
	summaries, err := handlerServices.FoodSummaryService.GetFoodSummaries(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.NewInternalError(utils.ErrFailedToRetrieve))
		return
	}

	utils.HandleSuccess(c, summaries)
}

// RemoveFoodSummary deletes a food summary and reverses its settlement
func RemoveFoodSummary(c *gin.Context) {
	var request models.RemoveFoodSummaryRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	response, err := handlerServices.FoodSummaryService.RemoveFoodSummary(request.SummaryID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, response)
}
