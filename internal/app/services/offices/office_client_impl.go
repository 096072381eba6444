package offices

import (
	"caseview-service/internal/app/config"
	"caseview-service/internal/app/contracts"
	"caseview-service/internal/pkg/constvars"
	"caseview-service/internal/pkg/exceptions"
	"caseview-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	officeClientInstance contracts.OfficeClient
	onceOfficeClient     sync.Once
)

type office struct {
	Name string `json:"navn"`
}

type officeClient struct {
	BaseUrl         string
	CacheTTL        time.Duration
	HTTPClient      *http.Client
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewOfficeClient(cfg config.OfficeRegistry, redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.OfficeClient {
	onceOfficeClient.Do(func() {
		client := &officeClient{
			BaseUrl:  cfg.BaseUrl,
			CacheTTL: time.Duration(cfg.CacheTTLInMinute) * time.Minute,
			HTTPClient: &http.Client{
				Timeout: time.Duration(cfg.RequestTimeoutInSeconds) * time.Second,
			},
			RedisRepository: redisRepository,
			Log:             logger,
		}
		officeClientInstance = client
	})
	return officeClientInstance
}

func (c *officeClient) GetOfficeName(ctx context.Context, officeID string) (string, error) {
	requestID := utils.GetRequestID(ctx)
	cacheKey := fmt.Sprintf("office:%s", officeID)

	cached, err := c.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var name string
		if err := json.Unmarshal([]byte(cached), &name); err == nil {
			return name, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/enhet/%s", c.BaseUrl, officeID), nil)
	if err != nil {
		return "", exceptions.ErrBuildRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Warn("officeClient.GetOfficeName request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("office_id", officeID),
			zap.Error(err),
		)
		return "", exceptions.ErrOfficeRegistryLookup(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Warn("officeClient.GetOfficeName unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("office_id", officeID),
			zap.Int("status_code", resp.StatusCode),
		)
		return "", exceptions.ErrOfficeRegistryLookup(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	result := new(office)
	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return "", exceptions.ErrOfficeRegistryDecode(err)
	}

	err = c.RedisRepository.Set(ctx, cacheKey, result.Name, c.CacheTTL)
	if err != nil {
		c.Log.Warn("officeClient.GetOfficeName failed to cache office name",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("office_id", officeID),
			zap.Error(err),
		)
	}

	return result.Name, nil
}
