// Command token mints a bearer token for the POS server.
//
//	JWT_SECRET=... token -sub till-1 -role terminal -ttl 720h
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/space-market/pos-server/internal/api/middleware"
	"github.com/space-market/pos-server/internal/core/domain"
	"github.com/space-market/pos-server/internal/pkg/config"
)

func main() {
	sub := flag.String("sub", "", "token subject, e.g. the operator or terminal name")
	role := flag.String("role", domain.RoleTerminal, "role claim: admin or terminal")
	ttl := flag.Duration("ttl", 0, "token lifetime, 0 for no expiry")
	flag.Parse()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		fatalf("JWT_SECRET is required")
	}
	if *sub == "" {
		fatalf("-sub is required")
	}
	if *role != domain.RoleAdmin && *role != domain.RoleTerminal {
		fatalf("unknown role %q", *role)
	}

	tok, err := middleware.IssueToken(cfg.JWTSecret, *sub, *role, *ttl)
	if err != nil {
		fatalf("sign token: %v", err)
	}
	fmt.Println(tok)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "token: "+format+"\n", args...)
	os.Exit(1)
}
