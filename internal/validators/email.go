package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// DomainResolver is the part of *net.Resolver the email check uses.
type DomainResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// EmailDomainChecker accepts an address when its domain has an MX record
// or, failing that, any address record.
type EmailDomainChecker struct {
	resolver DomainResolver
	timeout  time.Duration
}

// NewEmailDomainChecker uses net.DefaultResolver when resolver is nil.
// A positive timeout bounds the whole lookup.
func NewEmailDomainChecker(resolver DomainResolver, timeout time.Duration) *EmailDomainChecker {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &EmailDomainChecker{resolver: resolver, timeout: timeout}
}

func (ch *EmailDomainChecker) Valid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if ch.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ch.timeout)
		defer cancel()
	}

	if mx, err := ch.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	if ctx.Err() != nil {
		return false
	}

	ips, err := ch.resolver.LookupIPAddr(ctx, domain)
	return err == nil && len(ips) > 0
}
