package events

import (
	"caseview-service/internal/app/models"
	"caseview-service/internal/pkg/casedoc"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

const supplementalTaskWindow = 30 * 24 * time.Hour

// applySupplementalTasks seeds the task list from the original application's
// attachment manifest. It only fires while the case worker has not yet asked
// for anything (no document-requested event at all) and the application is
// fresh enough that the declared-but-missing attachments are still relevant.
func (s *eventService) applySupplementalTasks(ctx context.Context, token string, state *models.CaseState, storedCase *casedoc.StoredCase, eventLog *casedoc.EventLog) error {
	if eventLog != nil {
		for _, event := range eventLog.Events {
			if event.Type == casedoc.EventTypeDocumentRequested {
				return nil
			}
		}
	}

	if state.SubmittedAt == nil || time.Since(*state.SubmittedAt) >= supplementalTaskWindow {
		return nil
	}

	manifest, err := s.CaseStoreClient.GetAttachmentManifest(ctx, token, storedCase)
	if err != nil {
		s.Log.Warn("eventService.applySupplementalTasks manifest fetch failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCaseIDKey, state.CaseID),
			zap.Error(err),
		)
		return nil
	}
	if manifest == nil {
		return nil
	}

	for _, attachment := range manifest.Attachments {
		if attachment.Status != casedoc.AttachmentStatusRequired {
			continue
		}
		// The portal emits a placeholder row when the applicant skipped the
		// upload step entirely.
		if attachment.Type == constvars.AttachmentTypeOther && attachment.AdditionalInfo == constvars.AttachmentTypeOther {
			continue
		}
		state.Tasks = append(state.Tasks, &models.Task{
			ID:        utils.HashStrings(attachment.Type, attachment.AdditionalInfo),
			Title:     attachment.Type,
			ExtraInfo: attachment.AdditionalInfo,
			CreatedAt: *state.SubmittedAt,
		})
	}

	return nil
}
