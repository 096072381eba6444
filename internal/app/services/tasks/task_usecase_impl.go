package tasks

import (
	"caseview-service/internal/app/contracts"
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/dto/responses"
	"caseview-service/internal/pkg/utils"
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

type taskUsecase struct {
	CaseStoreClient  contracts.CaseStoreClient
	CaseStateBuilder contracts.CaseStateBuilder
	Log              *zap.Logger
}

var (
	taskUsecaseInstance contracts.TaskUsecase
	onceTaskUsecase     sync.Once
)

func NewTaskUsecase(
	caseStoreClient contracts.CaseStoreClient,
	caseStateBuilder contracts.CaseStateBuilder,
	logger *zap.Logger,
) contracts.TaskUsecase {
	onceTaskUsecase.Do(func() {
		taskUsecaseInstance = &taskUsecase{
			CaseStoreClient:  caseStoreClient,
			CaseStateBuilder: caseStateBuilder,
			Log:              logger,
		}
	})
	return taskUsecaseInstance
}

func (uc *taskUsecase) GetTasks(ctx context.Context, token, caseID string) ([]responses.TaskGroup, error) {
	uc.Log.Info("taskUsecase.GetTasks called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)

	state, err := uc.buildState(ctx, token, caseID)
	if err != nil {
		return nil, err
	}

	// A processed application has nothing left for the applicant to do.
	if state.Status == models.ApplicationStatusCompleted {
		return []responses.TaskGroup{}, nil
	}

	return groupTasksByDeadline(state.Tasks), nil
}

func (uc *taskUsecase) GetConditions(ctx context.Context, token, caseID string) ([]responses.ConditionResponse, error) {
	uc.Log.Info("taskUsecase.GetConditions called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)

	state, err := uc.buildState(ctx, token, caseID)
	if err != nil {
		return nil, err
	}

	conditions := make([]responses.ConditionResponse, 0, len(state.Conditions))
	for _, condition := range state.Conditions {
		if !isActionable(condition.Status) {
			continue
		}
		conditions = append(conditions, responses.ConditionResponse{
			Reference:     condition.Reference,
			Title:         condition.Title,
			Description:   condition.Description,
			Status:        string(condition.Status),
			CreatedAt:     condition.CreatedAt,
			LastChangedAt: condition.LastChangedAt,
			PaymentRefs:   condition.PaymentRefs,
		})
	}

	return conditions, nil
}

func (uc *taskUsecase) GetDocumentationRequirements(ctx context.Context, token, caseID string) ([]responses.DocumentationRequirementResponse, error) {
	uc.Log.Info("taskUsecase.GetDocumentationRequirements called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)

	state, err := uc.buildState(ctx, token, caseID)
	if err != nil {
		return nil, err
	}

	requirements := make([]responses.DocumentationRequirementResponse, 0, len(state.DocumentationRequirements))
	for _, requirement := range state.DocumentationRequirements {
		if !isActionable(requirement.Status) {
			continue
		}
		requirements = append(requirements, responses.DocumentationRequirementResponse{
			ID:          requirement.ID,
			Title:       requirement.Title,
			Description: requirement.Description,
			Status:      string(requirement.Status),
			Deadline:    requirement.Deadline,
			CreatedAt:   requirement.CreatedAt,
			PaymentRefs: requirement.PaymentRefs,
		})
	}

	return requirements, nil
}

func (uc *taskUsecase) buildState(ctx context.Context, token, caseID string) (*models.CaseState, error) {
	storedCase, err := uc.CaseStoreClient.GetStoredCase(ctx, token, caseID)
	if err != nil {
		return nil, err
	}
	return uc.CaseStateBuilder.BuildCaseState(ctx, token, storedCase)
}

// isActionable keeps only the statuses the applicant can still act on.
func isActionable(status models.RequirementStatus) bool {
	return status == models.RequirementStatusRelevant || status == models.RequirementStatusNotFulfilled
}

// groupTasksByDeadline buckets tasks on their deadline date, earliest bucket
// first, with the deadline-less bucket at the end.
func groupTasksByDeadline(tasks []*models.Task) []responses.TaskGroup {
	grouped := make(map[string][]responses.Task)
	deadlines := make(map[string]*time.Time)
	keys := make([]string, 0)

	for _, task := range tasks {
		key := ""
		if task.Deadline != nil {
			key = utils.FormatDate(*task.Deadline)
		}
		if _, seen := grouped[key]; !seen {
			keys = append(keys, key)
			deadlines[key] = task.Deadline
		}
		grouped[key] = append(grouped[key], responses.Task{
			ID:         task.ID,
			Title:      task.Title,
			ExtraInfo:  task.ExtraInfo,
			Deadline:   task.Deadline,
			CreatedAt:  task.CreatedAt,
			FromPortal: task.FromPortal,
		})
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i] == "" {
			return false
		}
		if keys[j] == "" {
			return true
		}
		return keys[i] < keys[j]
	})

	groups := make([]responses.TaskGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, responses.TaskGroup{
			Deadline: deadlines[key],
			Tasks:    grouped[key],
		})
	}
	return groups
}
