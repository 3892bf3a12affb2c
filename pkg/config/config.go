package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente desde secrets.toml).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	GCP       ServiceAccountConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	BaseURL string // opcional: URL pública para que los QR apunten a ?id=<ID>
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InventoryConfig direccionamiento del almacén de filas.
// Si SheetID está vacío (o no hay credencial), la app opera contra un CSV local.
type InventoryConfig struct {
	SheetID   string // ID del Google Sheet (la parte entre /d/ y /edit)
	Worksheet string // nombre de la pestaña que actúa como almacén de filas
	CSVPath   string // respaldo local cuando no hay Sheets configurado
}

// ServiceAccountConfig bloque de credencial de cuenta de servicio de Google
// ([gcp_service_account] en secrets.toml). Los nombres de campo JSON son los
// del archivo de credencial que descarga Google Cloud.
type ServiceAccountConfig struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	UniverseDomain          string `json:"universe_domain,omitempty"`
}

// Configured indica si hay credencial suficiente para autenticar contra la API.
func (c ServiceAccountConfig) Configured() bool {
	return c.PrivateKey != "" && c.ClientEmail != ""
}

// JSON serializa el bloque con el layout del archivo de credencial, listo para
// option.WithCredentialsJSON.
func (c ServiceAccountConfig) JSON() ([]byte, error) {
	if c.Type == "" {
		c.Type = "service_account"
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("serializar credencial de cuenta de servicio: %w", err)
	}
	return b, nil
}

// Load lee la configuración desde variables de entorno y opcionalmente desde
// secrets.toml (en ./ o ./config). Las env vars tienen prioridad:
// GCP_SERVICE_ACCOUNT_PRIVATE_KEY, INVENTORY_SHEET_ID, APP_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("secrets")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "inventario-sheets"),
			BaseURL: getString(v, "app.base_url", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		GCP: ServiceAccountConfig{
			Type:                    getString(v, "gcp_service_account.type", "service_account"),
			ProjectID:               getString(v, "gcp_service_account.project_id", ""),
			PrivateKeyID:            getString(v, "gcp_service_account.private_key_id", ""),
			PrivateKey:              getString(v, "gcp_service_account.private_key", ""),
			ClientEmail:             getString(v, "gcp_service_account.client_email", ""),
			ClientID:                getString(v, "gcp_service_account.client_id", ""),
			AuthURI:                 getString(v, "gcp_service_account.auth_uri", "https://accounts.google.com/o/oauth2/auth"),
			TokenURI:                getString(v, "gcp_service_account.token_uri", "https://oauth2.googleapis.com/token"),
			AuthProviderX509CertURL: getString(v, "gcp_service_account.auth_provider_x509_cert_url", "https://www.googleapis.com/oauth2/v1/certs"),
			ClientX509CertURL:       getString(v, "gcp_service_account.client_x509_cert_url", ""),
			UniverseDomain:          getString(v, "gcp_service_account.universe_domain", "googleapis.com"),
		},
		Inventory: InventoryConfig{
			SheetID:   getString(v, "inventory.sheet_id", ""),
			Worksheet: getString(v, "inventory.worksheet", "Inventario"),
			CSVPath:   getString(v, "inventory.csv_path", "inventario.csv"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
