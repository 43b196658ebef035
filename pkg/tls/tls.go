package tls

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/spiffe/go-spiffe/v2/spiffeid"
	"github.com/spiffe/go-spiffe/v2/spiffetls/tlsconfig"
	"github.com/spiffe/go-spiffe/v2/workloadapi"
	"go.uber.org/zap"
)

type TLSConfig struct {
	Enabled     bool   `envconfig:"TLS_ENABLED" default:"false"`
	SocketPath  string `envconfig:"SPIRE_SOCKET_PATH" default:"unix:///run/spire/sockets/agent.sock"`
	TrustDomain string `envconfig:"SPIFFE_TRUST_DOMAIN"` // empty accepts any SPIFFE ID
}

// ServerTLS holds the SPIRE-backed mTLS config for the admin HTTP server.
type ServerTLS struct {
	Config *tls.Config
	source *workloadapi.X509Source
	logger *zap.Logger
}

// LoadServerTLS returns nil when TLS is disabled.
func LoadServerTLS(ctx context.Context, cfg TLSConfig, logger *zap.Logger) (*ServerTLS, error) {
	if !cfg.Enabled {
		logger.Info("TLS is disabled")
		return nil, nil
	}

	authorizer := tlsconfig.AuthorizeAny()
	if cfg.TrustDomain != "" {
		td, err := spiffeid.TrustDomainFromString(cfg.TrustDomain)
		if err != nil {
			return nil, fmt.Errorf("invalid trust domain %q: %w", cfg.TrustDomain, err)
		}
		authorizer = tlsconfig.AuthorizeMemberOf(td)
	}

	source, err := workloadapi.NewX509Source(
		ctx,
		workloadapi.WithClientOptions(
			workloadapi.WithAddr(cfg.SocketPath),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create X509Source: %w", err)
	}

	tlsConfig := tlsconfig.MTLSServerConfig(source, source, authorizer)
	tlsConfig.MinVersion = tls.VersionTLS12

	logger.Info("SPIRE TLS configuration loaded",
		zap.String("socket_path", cfg.SocketPath),
		zap.String("trust_domain", cfg.TrustDomain))

	return &ServerTLS{Config: tlsConfig, source: source, logger: logger}, nil
}

// WatchSVID logs the current SVID expiry until ctx is done. SPIRE rotates
// certificates on its own; this is only visibility.
func (s *ServerTLS) WatchSVID(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svid, err := s.source.GetX509SVID()
			if err != nil {
				s.logger.Error("Failed to get X509 SVID", zap.Error(err))
				continue
			}
			s.logger.Info("Certificate status",
				zap.String("spiffe_id", svid.ID.String()),
				zap.Time("expiry", svid.Certificates[0].NotAfter),
				zap.Duration("ttl", time.Until(svid.Certificates[0].NotAfter)))
		}
	}
}

func (s *ServerTLS) Close() error {
	if s == nil || s.source == nil {
		return nil
	}
	return s.source.Close()
}
