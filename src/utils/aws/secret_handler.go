package aws_handler

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

type SecretManager struct {
	svc *secretsmanager.SecretsManager
}

// ServiceSecrets is the JSON shape stored under the service's secret id.
type ServiceSecrets struct {
	JWTSecret       string `json:"jwt_secret"`
	CoinGeckoAPIKey string `json:"coingecko_api_key"`
	NewsAPIKey      string `json:"news_api_key"`
}

func NewSecretManager(svc *secretsmanager.SecretsManager) *SecretManager {
	return &SecretManager{svc: svc}
}

func (s *SecretManager) GetSecretValue(secretId string) (string, error) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretId),
	}

	result, err := s.svc.GetSecretValue(input)
	if err != nil {
		return "", err
	}

	return *result.SecretString, nil
}

// GetServiceSecrets fetches and decodes the service secrets bundle.
func (s *SecretManager) GetServiceSecrets(secretId string) (*ServiceSecrets, error) {
	raw, err := s.GetSecretValue(secretId)
	if err != nil {
		return nil, err
	}

	var secrets ServiceSecrets
	if err := json.Unmarshal([]byte(raw), &secrets); err != nil {
		return nil, err
	}
	return &secrets, nil
}
