package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
	"myjobs/internal/redirect"
	"myjobs/internal/repository"

	"gorm.io/gorm"
)

var sourceCodeHeader = []string{"buid", "view_source", "action_type", "action", "value_1", "value_2"}

// Source code row outcomes
const (
	SourceCodeCreated = "created"
	SourceCodeUpdated = "updated"
	SourceCodeError   = "error"
)

// AutomationService applies bulk destination manipulation uploads
type AutomationService struct {
	manipulations repository.DestinationManipulationRepositoryInterface
}

// NewAutomationService creates a new automation service
func NewAutomationService(manipulations repository.DestinationManipulationRepositoryInterface) *AutomationService {
	return &AutomationService{manipulations: manipulations}
}

// SourceCodeResult is the outcome of one CSV row. Line counts the header as line 1.
type SourceCodeResult struct {
	Line    int    `json:"line"`
	BUID    int    `json:"buid,omitempty"`
	Action  string `json:"action,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ImportSourceCodes upserts one manipulation per CSV row, keyed by
// (buid, view_source, action_type, action). Bad rows are reported, not fatal.
func (s *AutomationService) ImportSourceCodes(r io.Reader) ([]SourceCodeResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidSourceCodeCSVFile, err)
	}
	if !sameHeader(header, sourceCodeHeader) {
		return nil, fmt.Errorf("%w: header must be %s", apperrors.ErrInvalidSourceCodeCSVFile, strings.Join(sourceCodeHeader, ","))
	}

	results := []SourceCodeResult{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			results = append(results, SourceCodeResult{Line: line, Status: SourceCodeError, Message: err.Error()})
			continue
		}
		results = append(results, s.applyRow(line, record))
	}
	return results, nil
}

func (s *AutomationService) applyRow(line int, record []string) SourceCodeResult {
	res := SourceCodeResult{Line: line, Status: SourceCodeError}
	if len(record) != len(sourceCodeHeader) {
		res.Message = fmt.Sprintf("expected %d fields, got %d", len(sourceCodeHeader), len(record))
		return res
	}

	m, err := parseSourceCodeRow(record)
	if err != nil {
		res.Message = err.Error()
		return res
	}
	res.BUID, res.Action = m.BUID, m.Action

	existing, err := s.manipulations.FindByKey(m.BUID, m.ViewSource, m.ActionType, m.Action)
	switch {
	case err == nil:
		existing.Value1, existing.Value2 = m.Value1, m.Value2
		if err := s.manipulations.Update(existing); err != nil {
			res.Message = fmt.Sprintf("failed to update: %v", err)
			return res
		}
		res.Status = SourceCodeUpdated
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.manipulations.Create(m); err != nil {
			res.Message = fmt.Sprintf("failed to create: %v", err)
			return res
		}
		res.Status = SourceCodeCreated
	default:
		res.Message = fmt.Sprintf("failed to look up manipulation: %v", err)
	}
	return res
}

func parseSourceCodeRow(record []string) (*models.DestinationManipulation, error) {
	buid, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil || buid < 1 {
		return nil, fmt.Errorf("invalid buid %q", record[0])
	}
	vs, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil || vs < 0 {
		return nil, fmt.Errorf("invalid view_source %q", record[1])
	}
	actionType, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil || (actionType != 1 && actionType != 2) {
		return nil, fmt.Errorf("invalid action_type %q", record[2])
	}
	action := strings.ToLower(strings.TrimSpace(record[3]))
	if !redirect.IsKnownAction(action) {
		return nil, fmt.Errorf("unknown action %q", record[3])
	}
	return &models.DestinationManipulation{
		BUID:       buid,
		ViewSource: vs,
		ActionType: actionType,
		Action:     action,
		Value1:     record[4],
		Value2:     record[5],
	}, nil
}

func sameHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if strings.ToLower(strings.TrimSpace(strings.TrimPrefix(got[i], "\ufeff"))) != want[i] {
			return false
		}
	}
	return true
}
