package usecases

import (
	"context"
	"fmt"

	"github.com/szentjozsefhackathon/cantores/internal/application/plan/dto"
	"github.com/szentjozsefhackathon/cantores/internal/domain/plan"
	"github.com/szentjozsefhackathon/cantores/internal/domain/template"
	"github.com/szentjozsefhackathon/cantores/internal/shared/db"
	"github.com/szentjozsefhackathon/cantores/internal/shared/logger"
)

// AttachTemplateCommand expands a template into a plan.
type AttachTemplateCommand struct {
	PlanID      uint
	TemplateID  uint
	DefaultOnly bool
}

// AttachTemplateUseCase appends the slots of a template to a plan.
type AttachTemplateUseCase struct {
	planRepo       plan.Repository
	occurrenceRepo plan.OccurrenceRepository
	templateRepo   template.Repository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

// NewAttachTemplateUseCase creates a new AttachTemplateUseCase.
func NewAttachTemplateUseCase(
	planRepo plan.Repository,
	occurrenceRepo plan.OccurrenceRepository,
	templateRepo template.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AttachTemplateUseCase {
	return &AttachTemplateUseCase{
		planRepo:       planRepo,
		occurrenceRepo: occurrenceRepo,
		templateRepo:   templateRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute appends one occurrence per template slot in template order,
// numbered contiguously after the existing occurrences. With DefaultOnly
// only slots included by default are attached. Unknown or inactive
// templates add nothing.
func (uc *AttachTemplateUseCase) Execute(ctx context.Context, cmd AttachTemplateCommand) (*dto.TemplateExpansionResult, error) {
	result := &dto.TemplateExpansionResult{}

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		p, err := uc.planRepo.LockByID(txCtx, cmd.PlanID)
		if err != nil {
			return fmt.Errorf("failed to lock plan: %w", err)
		}
		if p == nil {
			return nil
		}

		tpl, err := uc.templateRepo.GetByID(txCtx, cmd.TemplateID)
		if err != nil {
			return fmt.Errorf("failed to get template: %w", err)
		}
		if tpl == nil || !tpl.IsActive() {
			uc.logger.Warnw("template not usable", "plan_id", p.ID(), "template_id", cmd.TemplateID)
			return nil
		}

		count, err := uc.occurrenceRepo.CountByPlan(txCtx, p.ID())
		if err != nil {
			return fmt.Errorf("failed to count occurrences: %w", err)
		}

		for _, slotID := range tpl.ExpansionSlots(cmd.DefaultOnly) {
			count++
			o, err := plan.NewSlotOccurrence(p.ID(), slotID, count)
			if err != nil {
				return err
			}
			if err := uc.occurrenceRepo.Create(txCtx, o); err != nil {
				return err
			}
			result.Added++
		}
		result.Changed = result.Added > 0
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to attach template", "plan_id", cmd.PlanID, "template_id", cmd.TemplateID, "error", err)
		return nil, err
	}

	uc.logger.Infow("template attached",
		"plan_id", cmd.PlanID,
		"template_id", cmd.TemplateID,
		"default_only", cmd.DefaultOnly,
		"added", result.Added,
	)
	return result, nil
}
