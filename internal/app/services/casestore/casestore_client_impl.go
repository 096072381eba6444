package casestore

import (
	"caseview-service/internal/app/config"
	"caseview-service/internal/app/contracts"
	"caseview-service/internal/pkg/casedoc"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/exceptions"
	"caseview-service/internal/pkg/utils"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	caseStoreClientInstance contracts.CaseStoreClient
	onceCaseStoreClient     sync.Once
)

type caseStoreClient struct {
	BaseUrl          string
	IntegrationID    string
	IntegrationPass  string
	DocumentCacheTTL time.Duration
	HTTPClient       *http.Client
	RedisRepository  contracts.RedisRepository
	Log              *zap.Logger
}

func NewCaseStoreClient(cfg config.CaseStore, redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.CaseStoreClient {
	onceCaseStoreClient.Do(func() {
		client := &caseStoreClient{
			BaseUrl:          cfg.BaseUrl,
			IntegrationID:    cfg.IntegrationID,
			IntegrationPass:  cfg.IntegrationPassword,
			DocumentCacheTTL: time.Duration(cfg.DocumentCacheTTLInMinute) * time.Minute,
			HTTPClient: &http.Client{
				Timeout: time.Duration(cfg.RequestTimeoutInSeconds) * time.Second,
			},
			RedisRepository: redisRepository,
			Log:             logger,
		}
		caseStoreClientInstance = client
	})
	return caseStoreClientInstance
}

func (c *caseStoreClient) GetStoredCase(ctx context.Context, token, caseID string) (*casedoc.StoredCase, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("caseStoreClient.GetStoredCase called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCaseIDKey, caseID),
	)

	body, err := c.doGet(ctx, token, fmt.Sprintf("%s/soknader/%s", c.BaseUrl, caseID))
	if err != nil {
		c.Log.Error("caseStoreClient.GetStoredCase request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCaseIDKey, caseID),
			zap.Error(err),
		)
		return nil, err
	}

	storedCase := new(casedoc.StoredCase)
	err = json.Unmarshal(body, storedCase)
	if err != nil {
		return nil, exceptions.ErrCaseStoreDecode(err)
	}
	return storedCase, nil
}

func (c *caseStoreClient) GetAllStoredCases(ctx context.Context, token string) ([]*casedoc.StoredCase, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("caseStoreClient.GetAllStoredCases called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	body, err := c.doGet(ctx, token, fmt.Sprintf("%s/soknader", c.BaseUrl))
	if err != nil {
		c.Log.Error("caseStoreClient.GetAllStoredCases request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCaseStoreSearchCases(err)
	}

	var storedCases []*casedoc.StoredCase
	err = json.Unmarshal(body, &storedCases)
	if err != nil {
		return nil, exceptions.ErrCaseStoreDecode(err)
	}
	return storedCases, nil
}

func (c *caseStoreClient) GetEventLog(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*casedoc.EventLog, error) {
	if storedCase.EventLogInfo == nil {
		return nil, nil
	}

	info := storedCase.EventLogInfo
	cacheKey := fmt.Sprintf("casedoc:%s:%s:%d", storedCase.CaseID, info.MetadataID, info.LastUpdated)
	body, err := c.getDocument(ctx, token, storedCase.CaseID, info.MetadataID, cacheKey)
	if err != nil {
		return nil, err
	}

	eventLog := new(casedoc.EventLog)
	err = json.Unmarshal(body, eventLog)
	if err != nil {
		return nil, exceptions.ErrDecodeEventLog(err)
	}

	if !strings.HasPrefix(eventLog.Version, fmt.Sprintf("%d.", constvars.EventLogVersionMajor)) {
		c.Log.Warn("caseStoreClient.GetEventLog unexpected log version",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingCaseIDKey, storedCase.CaseID),
			zap.String("version", eventLog.Version),
		)
	}
	return eventLog, nil
}

func (c *caseStoreClient) GetOriginalApplication(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*casedoc.OriginalApplication, error) {
	if storedCase.OriginalApplication == nil {
		return nil, nil
	}

	documentID := storedCase.OriginalApplication.ApplicationDocumentID
	cacheKey := fmt.Sprintf("casedoc:%s:%s", storedCase.CaseID, documentID)
	body, err := c.getDocument(ctx, token, storedCase.CaseID, documentID, cacheKey)
	if err != nil {
		return nil, err
	}

	application := new(casedoc.OriginalApplication)
	err = json.Unmarshal(body, application)
	if err != nil {
		return nil, exceptions.ErrCaseStoreDecode(err)
	}
	return application, nil
}

func (c *caseStoreClient) GetAttachmentManifest(ctx context.Context, token string, storedCase *casedoc.StoredCase) (*casedoc.AttachmentManifest, error) {
	if storedCase.OriginalApplication == nil || storedCase.OriginalApplication.AttachmentManifestID == "" {
		return nil, nil
	}

	manifestID := storedCase.OriginalApplication.AttachmentManifestID
	cacheKey := fmt.Sprintf("casedoc:%s:%s", storedCase.CaseID, manifestID)
	body, err := c.getDocument(ctx, token, storedCase.CaseID, manifestID, cacheKey)
	if err != nil {
		return nil, err
	}

	manifest := new(casedoc.AttachmentManifest)
	err = json.Unmarshal(body, manifest)
	if err != nil {
		return nil, exceptions.ErrCaseStoreDecode(err)
	}
	return manifest, nil
}

// getDocument fetches a case document, caching it in redis under the given
// key. Immutable documents cache by id alone; the event log folds its
// last-updated timestamp into the key so appended events are not masked.
func (c *caseStoreClient) getDocument(ctx context.Context, token, caseID, documentID, cacheKey string) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)

	cached, err := c.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var raw json.RawMessage
		if err := json.Unmarshal([]byte(cached), &raw); err == nil {
			return raw, nil
		}
	}

	body, err := c.doGet(ctx, token, fmt.Sprintf("%s/soknader/%s/dokumenter/%s", c.BaseUrl, caseID, documentID))
	if err != nil {
		c.Log.Error("caseStoreClient.getDocument request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCaseIDKey, caseID),
			zap.Error(err),
		)
		return nil, err
	}

	err = c.RedisRepository.Set(ctx, cacheKey, json.RawMessage(body), c.DocumentCacheTTL)
	if err != nil {
		c.Log.Warn("caseStoreClient.getDocument failed to cache document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCaseIDKey, caseID),
			zap.Error(err),
		)
	}

	return body, nil
}

func (c *caseStoreClient) doGet(ctx context.Context, token, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrBuildRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearer+" "+token)
	req.Header.Set(constvars.HeaderIntegrationID, c.IntegrationID)
	req.Header.Set(constvars.HeaderIntegrationPass, c.IntegrationPass)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendRequest(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK:
	case constvars.StatusUnauthorized:
		return nil, exceptions.ErrCaseStoreUnauthorized(nil)
	case constvars.StatusForbidden:
		return nil, exceptions.ErrCaseStoreForbidden(nil)
	case constvars.StatusNotFound:
		return nil, exceptions.ErrCaseNotFound(nil)
	case constvars.StatusGone:
		return nil, exceptions.ErrCaseDocumentGone(nil)
	default:
		return nil, exceptions.ErrCaseStoreGetDocument(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrCaseStoreGetDocument(err)
	}
	return body, nil
}
