package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/LavaJover/shvark-revenue-service/internal/domain"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-revenue-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
)

const importFieldCount = 5

type ImportSummary struct {
	TenantsCreated  int
	ChannelsCreated int
}

type BatchImportUsecase interface {
	ImportAccounts(payload string) (*ImportSummary, error)
}

// DefaultBatchImportUsecase ingests the external account payload:
// newline rows of displayName,secret,splitRatio,channelDisplayName,
// channelExternalID with an optional header row.
type DefaultBatchImportUsecase struct {
	TxManager domain.TxManager
	Publisher *publisher.KafkaPublisher
	EventLog  logger.LedgerEventLogger
	Metrics   *metrics.RevenueMetrics
}

func NewDefaultBatchImportUsecase(
	txManager domain.TxManager,
	kafkaPublisher *publisher.KafkaPublisher,
	eventLogger logger.LedgerEventLogger,
	revenueMetrics *metrics.RevenueMetrics) *DefaultBatchImportUsecase {

	return &DefaultBatchImportUsecase{
		TxManager: txManager,
		Publisher: kafkaPublisher,
		EventLog:  eventLogger,
		Metrics:   revenueMetrics,
	}
}

// ImportAccounts walks the whole payload before writing anything, then
// applies the accumulated tenants and channels in one transaction. A
// single malformed row (fewer than 5 fields) aborts the import with zero
// mutation. Blank lines are skipped. Rows naming the same new tenant are
// merged into one tenant record with one channel per row.
func (uc *DefaultBatchImportUsecase) ImportAccounts(payload string) (*ImportSummary, error) {
	var summary *ImportSummary
	err := uc.TxManager.Do(func(r domain.Repositories) error {
		persisted, err := r.Tenants.GetTenants()
		if err != nil {
			return err
		}
		persistedByName := make(map[string]*domain.Tenant, len(persisted))
		for _, t := range persisted {
			persistedByName[t.DisplayName] = t
		}

		var newTenants []*domain.Tenant
		var newChannels []*domain.Channel
		createdByName := make(map[string]*domain.Tenant)

		for i, line := range strings.Split(payload, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			fields := strings.Split(line, ",")
			if i == 0 && strings.EqualFold(strings.TrimSpace(fields[0]), "displayName") {
				continue
			}
			if len(fields) < importFieldCount {
				return &domain.MalformedRowError{Line: i + 1}
			}
			for j := range fields {
				fields[j] = strings.TrimSpace(fields[j])
			}
			displayName, secret, ratioField := fields[0], fields[1], fields[2]
			channelName, externalID := fields[3], fields[4]

			tenant, ok := persistedByName[displayName]
			if !ok {
				tenant, ok = createdByName[displayName]
			}
			if !ok {
				// Ratio is taken as-is, even out of range. Legacy
				// looseness of the import format.
				ratio, _ := strconv.ParseFloat(ratioField, 64)
				tenant = &domain.Tenant{
					ID:          uuid.New().String(),
					DisplayName: displayName,
					Secret:      secret,
					Role:        domain.RoleTenant,
					SplitRatio:  ratio,
					CreatedAt:   time.Now(),
				}
				createdByName[displayName] = tenant
				newTenants = append(newTenants, tenant)
			}

			newChannels = append(newChannels, &domain.Channel{
				ID:          uuid.New().String(),
				TenantID:    tenant.ID,
				Platform:    domain.PlatformFromExternalID(externalID),
				ExternalID:  externalID,
				DisplayName: channelName,
			})
		}

		for _, tenant := range newTenants {
			if err := r.Tenants.CreateTenant(tenant); err != nil {
				return err
			}
		}
		for _, channel := range newChannels {
			if err := r.Channels.CreateChannel(channel); err != nil {
				return err
			}
		}

		summary = &ImportSummary{
			TenantsCreated:  len(newTenants),
			ChannelsCreated: len(newChannels),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recordImport(summary)
	uc.auditImport(summary)
	uc.publishImportEvent(summary)
	return summary, nil
}

func (uc *DefaultBatchImportUsecase) auditImport(summary *ImportSummary) {
	if uc.EventLog == nil {
		return
	}
	event := logger.ImportCompletedEvent{
		TenantsCreated:  summary.TenantsCreated,
		ChannelsCreated: summary.ChannelsCreated,
		Timestamp:       time.Now(),
	}
	if err := uc.EventLog.LogImportCompleted(context.Background(), event); err != nil {
		log.Printf("failed to log import event: %v", err)
	}
}

func (uc *DefaultBatchImportUsecase) publishImportEvent(summary *ImportSummary) {
	if uc.Publisher == nil {
		return
	}
	event := publisher.ImportEvent{
		TenantsCreated:  summary.TenantsCreated,
		ChannelsCreated: summary.ChannelsCreated,
		CompletedAt:     time.Now(),
	}
	if err := uc.Publisher.PublishImport(event); err != nil {
		log.Printf("failed to publish import event: %v", err)
	}
}

func (uc *DefaultBatchImportUsecase) recordImport(summary *ImportSummary) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordImport(summary.TenantsCreated, summary.ChannelsCreated)
}
