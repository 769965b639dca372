package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fadhlanhapp/lunchtab-backend/models"
	"github.com/fadhlanhapp/lunchtab-backend/utils"
)

// ExcelService handles Excel export functionality
type ExcelService struct {
	companyService     *CompanyService
	memberService      *MemberService
	foodSummaryService *FoodSummaryService
}

// NewExcelService creates a new Excel service
func NewExcelService(companyService *CompanyService, memberService *MemberService, foodSummaryService *FoodSummaryService) *ExcelService {
	return &ExcelService{
		companyService:     companyService,
		memberService:      memberService,
		foodSummaryService: foodSummaryService,
	}
}

// ExportCompanyReport generates an Excel report for a company: member
// balances, food summary history, and topups/deposits.
func (s *ExcelService) ExportCompanyReport(companyID string) (*excelize.File, string, error) {
	company, err := s.companyService.GetCompany(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get company: %v", err)
	}

	members, err := s.memberService.GetTeamMembers(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get members: %v", err)
	}

	summaries, err := s.foodSummaryService.GetFoodSummaries(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get food summaries: %v", err)
	}

	topups, err := s.companyService.GetTopups(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get topups: %v", err)
	}

	deposits, err := s.memberService.GetCashDeposits(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get cash deposits: %v", err)
	}

	f := excelize.NewFile()

	if err := s.createBalancesSheet(f, company, members); err != nil {
		return nil, "", fmt.Errorf("failed to create balances sheet: %v", err)
	}

	if err := s.createFoodSummarySheet(f, members, summaries); err != nil {
		return nil, "", fmt.Errorf("failed to create food summary sheet: %v", err)
	}

	if err := s.createCreditsSheet(f, members, topups, deposits); err != nil {
		return nil, "", fmt.Errorf("failed to create credits sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Report_%s.xlsx",
		utils.CleanFileName(company.Name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
}

// createBalancesSheet creates Sheet 1: company and member balances
func (s *ExcelService) createBalancesSheet(f *excelize.File, company *models.Company, members []*models.Member) error {
	sheetName := "Balances"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	f.SetCellValue(sheetName, "A1", "Company")
	f.SetCellValue(sheetName, "B1", company.Name)
	f.SetCellValue(sheetName, "A2", "Company Balance")
	f.SetCellValue(sheetName, "B2", company.Balance)
	if company.LastTopup != nil {
		f.SetCellValue(sheetName, "A3", "Last Topup")
		f.SetCellValue(sheetName, "B3", company.LastTopup.Format("2006-01-02"))
	}

	headers := []string{"Member", "Email", "Designation", "Balance", "Last Cash Deposit", "Active"}
	headerRow := 5
	for i, header := range headers {
		cell := fmt.Sprintf("%s%d", string(rune('A'+i)), headerRow)
		f.SetCellValue(sheetName, cell, header)
	}

	style, _ := headerStyle(f)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRow),
		fmt.Sprintf("%s%d", string(rune('A'+len(headers)-1)), headerRow), style)

	sorted := make([]*models.Member, len(members))
	copy(sorted, members)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	for i, member := range sorted {
		row := headerRow + 1 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), member.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), member.Email)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), member.Designation)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), member.Balance)
		if member.LastCashDeposit != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), member.LastCashDeposit.Format("2006-01-02"))
		}
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), member.Active)
	}

	f.SetColWidth(sheetName, "A", "F", 18)

	return nil
}

// createFoodSummarySheet creates Sheet 2: food summary history
func (s *ExcelService) createFoodSummarySheet(f *excelize.File, members []*models.Member, summaries []*models.FoodSummary) error {
	sheetName := "Food Summaries"
	f.NewSheet(sheetName)

	names := make(map[string]string, len(members))
	for _, member := range members {
		names[member.ID] = member.Name
	}

	headers := []string{"Date", "Breads", "Curries", "Total", "Brought Food", "Didn't Bring Food", "Extra Guests"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	style, _ := headerStyle(f)
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), style)

	for i, summary := range summaries {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), summary.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), summary.TotalBreadsAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), summary.TotalCurriesAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), summary.TotalAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), joinMemberNames(summary.MembersBroughtFood, names))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), joinMemberNames(summary.MembersDidntBringFood, names))

		extraTotal := 0
		for _, extra := range summary.ExtraMembers {
			extraTotal += extra.Headcount
		}
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), extraTotal)
	}

	f.SetColWidth(sheetName, "A", "D", 12)
	f.SetColWidth(sheetName, "E", "F", 40)

	return nil
}

// createCreditsSheet creates Sheet 3: topups and cash deposits
func (s *ExcelService) createCreditsSheet(f *excelize.File, members []*models.Member, topups []models.Topup, deposits []models.CashDeposit) error {
	sheetName := "Credits"
	f.NewSheet(sheetName)

	names := make(map[string]string, len(members))
	for _, member := range members {
		names[member.ID] = member.Name
	}

	style, _ := headerStyle(f)

	f.SetCellValue(sheetName, "A1", "Topups")
	headers := []string{"Date", "Amount", "Performed By"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s2", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, "A2", "C2", style)

	for i, topup := range topups {
		row := i + 3
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), topup.TopupDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), topup.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), topup.PerformedBy)
	}

	depositStart := len(topups) + 5
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", depositStart), "Cash Deposits")
	depositHeaders := []string{"Date", "Amount", "Member"}
	for i, header := range depositHeaders {
		cell := fmt.Sprintf("%s%d", string(rune('A'+i)), depositStart+1)
		f.SetCellValue(sheetName, cell, header)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", depositStart+1), fmt.Sprintf("C%d", depositStart+1), style)

	for i, deposit := range deposits {
		row := depositStart + 2 + i
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), deposit.DepositDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), deposit.Amount)
		name := names[deposit.MemberID]
		if name == "" {
			name = deposit.MemberID
		}
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), name)
	}

	f.SetColWidth(sheetName, "A", "C", 16)

	return nil
}

func joinMemberNames(memberIDs []string, names map[string]string) string {
	result := ""
	for i, id := range memberIDs {
		name := names[id]
		if name == "" {
			name = id
		}
		if i > 0 {
			result += ", "
		}
		result += name
	}
	return result
}
