package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/StinkyJeans/Ecommerce-sub001/internal/audit"
	"github.com/StinkyJeans/Ecommerce-sub001/internal/config"
	httpapi "github.com/StinkyJeans/Ecommerce-sub001/internal/http"
	"github.com/StinkyJeans/Ecommerce-sub001/internal/security"
	"github.com/StinkyJeans/Ecommerce-sub001/internal/store"
)

func main() {
	cfgPath := os.Getenv("STOREFRONT_CONFIG")
	if cfgPath == "" {
		cfgPath = "/app/config/storefront.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// audit secret
	auditSecret := ""
	if cfg.Server.Audit.Enabled {
		auditSecret, err = config.ResolveSecret(cfg.Server.Audit.SecretRef)
		if err != nil {
			log.Fatalf("resolve audit secret failed: %v", err)
		}
	}
	aud := audit.New(cfg.Server.Audit.Enabled, auditSecret)

	// session secret
	sessionSecret, err := config.ResolveSecret(cfg.Server.Session.SecretRef)
	if err != nil {
		log.Fatalf("resolve session secret failed: %v", err)
	}
	sessions := security.NewSessions(
		[]byte(sessionSecret),
		time.Duration(cfg.Server.Session.TTLSec)*time.Second,
	)

	// redis password
	redisPwd := ""
	if cfg.Redis.AuthRef != "" {
		redisPwd, _ = config.ResolveSecret(cfg.Redis.AuthRef)
	}

	st := store.New(cfg, redisPwd)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := st.Ping(ctx); err != nil {
		log.Printf("redis ping failed: %v", err)
	}

	keys := security.NewKeyManager(st)
	srv := httpapi.New(cfg, st, aud, sessions, keys)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Bind.Host, cfg.Server.Bind.Port)
	log.Printf("starting %s on %s", cfg.Server.Name, addr)
	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		log.Fatal(err)
	}
}
