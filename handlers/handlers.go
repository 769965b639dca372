package handlers

import (
	"github.com/fadhlanhapp/lunchtab-backend/repository"
	"github.com/fadhlanhapp/lunchtab-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	CompanyService     *services.CompanyService
	MemberService      *services.MemberService
	FoodSummaryService *services.FoodSummaryService
	ExcelService       *services.ExcelService
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices() *HandlerServices {
	ledgerRepo := repository.NewLedgerRepository()
	companyRepo := repository.NewCompanyRepository()
	memberRepo := repository.NewMemberRepository()
	summaryRepo := repository.NewFoodSummaryRepository(ledgerRepo)

	companyService := services.NewCompanyService(companyRepo, ledgerRepo)
	memberService := services.NewMemberService(memberRepo, companyRepo, ledgerRepo)
	foodSummaryService := services.NewFoodSummaryService(
		summaryRepo, memberRepo, companyRepo, services.NewSplitService())

	return &HandlerServices{
		CompanyService:     companyService,
		MemberService:      memberService,
		FoodSummaryService: foodSummaryService,
		ExcelService:       services.NewExcelService(companyService, memberService, foodSummaryService),
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}
