package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Orionsman/cari-takip/internal/config"
	"github.com/Orionsman/cari-takip/internal/database"
	"github.com/Orionsman/cari-takip/internal/router"
	"github.com/Orionsman/cari-takip/internal/snapshot"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// ensure basic directories exist
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}
	if err := ensureDir(cfg.Snapshot.Dir); err != nil {
		log.Fatalf("create snapshot dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// snapshot store
	store, err := snapshot.NewDirStore(cfg.Snapshot.Dir)
	if err != nil {
		log.Fatalf("init snapshot store: %v", err)
	}

	// setup router
	r := router.Setup(cfg, db, store)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
