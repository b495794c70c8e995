package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS   = ""             // e.g. "example.com,example2.com"
	MYSQL_DSN     = ""             // MySQL will be used if this is set
	SQLITE_FILE   = "musicshop.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS  = "0.0.0.0:8080"
	SESSION_KEY   = "please-change-me-in-production"
	TMP_DIR       = "/tmp" // Used as local scratch space in case of S3 bucket
	UPLOADS_DIR   = ""     // Used for creating the initial disk bucket
	TEMPLATES_DIR = "templates"
	DEBUG_MODE    = true
	// Registration is refused for emails whose top-level domain is in this list
	DISALLOWED_EMAIL_DOMAINS = "net,xyz"
)

func Init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("UPLOADS_DIR", &UPLOADS_DIR)
	readEnvString("TEMPLATES_DIR", &TEMPLATES_DIR)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("DISALLOWED_EMAIL_DOMAINS", &DISALLOWED_EMAIL_DOMAINS)
}

// DisallowedEmailDomains returns DISALLOWED_EMAIL_DOMAINS as a normalised list
func DisallowedEmailDomains() []string {
	result := []string{}
	for _, domain := range strings.Split(DISALLOWED_EMAIL_DOMAINS, ",") {
		domain = strings.TrimSpace(strings.ToLower(domain))
		if domain != "" {
			result = append(result, domain)
		}
	}
	return result
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}
