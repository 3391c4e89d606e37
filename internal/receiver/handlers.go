package receiver

import (
	"atsconnect/internal/events"
	"atsconnect/pkg/domain"
	"atsconnect/pkg/logger"
	"atsconnect/pkg/storage"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// jobBoardHandler stores applications and closes postings taken down on the
// board. New applications are published on bus when there is one.
func jobBoardHandler(st storage.Storage, bus EventBus.Bus) Handler {
	return func(ctx context.Context, event Event) error {
		switch {
		case strings.HasPrefix(event.Type, "application."):
			n, err := ingest(ctx, st, event, domain.RecordKindApplication)
			if err != nil {
				return err
			}
			if n > 0 && bus != nil && event.Type == string(domain.EventApplicationCreated) {
				events.Publish(ctx, bus, domain.EventApplicationCreated, map[string]any{
					"integrationId": event.Integration.ID,
					"provider":      event.Integration.Provider,
					"application":   event.Data,
				})
			}

			return nil
		case event.Type == "posting.closed" || event.Type == "posting.expired":
			return closePosting(ctx, st, event)
		default:
			logger.Debug(ctx, "ignoring job board event", zap.String("event", event.Type))

			return nil
		}
	}
}

func hrisHandler(st storage.Storage) Handler {
	return func(ctx context.Context, event Event) error {
		switch {
		case strings.HasPrefix(event.Type, "employee."):
			_, err := ingest(ctx, st, event, domain.RecordKindEmployee)

			return err
		case strings.HasPrefix(event.Type, "department."):
			_, err := ingest(ctx, st, event, domain.RecordKindDepartment)

			return err
		default:
			logger.Debug(ctx, "ignoring hris event", zap.String("event", event.Type))

			return nil
		}
	}
}

// ingest stores the event as an external record and reports how many records
// were new.
func ingest(ctx context.Context, st storage.RecordStorage, event Event, kind domain.RecordKind) (int, error) {
	externalID := stringField(event.Data, "id")
	if externalID == "" {
		return 0, fmt.Errorf("%s event without id", event.Type)
	}

	n, err := st.InsertExternalRecords(ctx, []domain.ExternalRecord{{
		IntegrationID: event.Integration.ID,
		Kind:          kind,
		ExternalID:    externalID,
		Payload:       event.Raw,
	}})
	if err != nil {
		return 0, fmt.Errorf("could not store %s: %w", kind, err)
	}

	return n, nil
}

func closePosting(ctx context.Context, st storage.PostingStorage, event Event) error {
	externalID := stringField(event.Data, "posting_id")
	if externalID == "" {
		externalID = stringField(event.Data, "id")
	}

	posting, err := st.PostingByExternalID(ctx, event.Integration.ID, externalID)
	if err != nil {
		return fmt.Errorf("could not get posting: %w", err)
	}
	if posting == nil {
		logger.Warn(ctx, "closed posting is unknown", zap.String("external_id", externalID))

		return nil
	}

	if _, err := st.UpdatePosting(ctx, posting.ID, storage.PostingUpdates{
		Status:          domain.PostingStatusClosed,
		Metadata:        map[string]any{"closed_by": event.Type},
		TouchLastSynced: true,
	}); err != nil {
		return fmt.Errorf("could not close posting: %w", err)
	}

	return nil
}

// stringField reads an id that providers send either as a string or a number.
func stringField(data map[string]any, key string) string {
	switch v := data[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
