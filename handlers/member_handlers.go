package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// CreateMember handles adding a team member to a company
func CreateMember(c *gin.Context) {
	var request models.CreateMemberRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	member, err := handlerServices.MemberService.CreateMember(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, member)
}

// ListMembers handles retrieving all members of a company
func ListMembers(c *gin.Context) {
	members, err := handlerServices.MemberService.GetTeamMembers(c.Param("id"))
	if err != nil {
		utils.HandleError(c, utils.NewInternalError(utils.ErrFailedToRetrieve))
		return
	}

	utils.HandleSuccess(c, members)
}

// UpdateMember handles updating a member's profile
func UpdateMember(c *gin.Context) {
	var request models.UpdateMemberRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	member, err := handlerServices.MemberService.UpdateMember(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, member)
}

// DeactivateMember handles marking a member inactive
func DeactivateMember(c *gin.Context) {
	if err := handlerServices.MemberService.DeactivateMember(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deactivated": true})
}

// AddCashDeposit handles crediting a member balance with a cash deposit
func AddCashDeposit(c *gin.Context) {
	var request models.CashDepositRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	balance, err := handlerServices.MemberService.AddCashDeposit(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.BalanceResponse{Balance: balance})
}
