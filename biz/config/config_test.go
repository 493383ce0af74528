package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "deploy.yml")
	if err := os.WriteFile(p, []byte(`server:
  addr: ":8080"

storage:
  driver: "sqlite"
  sqlite_path: ":memory:"

mysql:
  db_name: "gymweb"
  ip: "127.0.0.1"
  port: 3306
  username: ""
  password: ""

redis:
  ip: "127.0.0.1"
  port: 6379
  password: ""
  db: 0
  key_prefix: "gymweb:"

password:
  bcrypt_cost: 4

cors:
  allow_origins:
    - "*"
  allow_methods:
    - "GET"
  allow_headers:
    - "Origin"
  allow_credentials: true
  max_age: 600
`), 0600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	Init(p)
	if got := GetStorageConf().Driver; got != StorageDriverSQLite {
		t.Fatalf("storage driver mismatch: got=%q", got)
	}
	if got := GetPasswordConf().BcryptCost; got != 4 {
		t.Fatalf("bcrypt cost mismatch: got=%d", got)
	}
	if got := GetRedisConf().KeyPrefix; got != "gymweb:" {
		t.Fatalf("redis key prefix mismatch: got=%q", got)
	}
	if got := GetMySQLConf().Port; got != 3306 {
		t.Fatalf("mysql port mismatch: got=%d", got)
	}
}
