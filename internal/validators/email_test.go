package validators

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx       map[string][]*net.MX
	ips      map[string][]net.IPAddr
	lookups  []string
	deadline bool
}

func (f *fakeResolver) LookupMX(ctx context.Context, name string) ([]*net.MX, error) {
	_, f.deadline = ctx.Deadline()
	f.lookups = append(f.lookups, "mx:"+name)
	if mx, ok := f.mx[name]; ok {
		return mx, nil
	}
	return nil, &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
}

func (f *fakeResolver) LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error) {
	f.lookups = append(f.lookups, "ip:"+host)
	if ips, ok := f.ips[host]; ok {
		return ips, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, errors.New("no such host")
}

func TestEmailDomainChecker_Malformed(t *testing.T) {
	r := &fakeResolver{}
	ch := NewEmailDomainChecker(r, time.Second)

	assert.False(t, ch.Valid(context.Background(), "no-at-sign"))
	assert.False(t, ch.Valid(context.Background(), "trailing@"))
	assert.Empty(t, r.lookups)
}

func TestEmailDomainChecker_MXRecord(t *testing.T) {
	r := &fakeResolver{mx: map[string][]*net.MX{"unilag.edu.ng": {{Host: "mx.unilag.edu.ng.", Pref: 10}}}}
	ch := NewEmailDomainChecker(r, time.Second)

	assert.True(t, ch.Valid(context.Background(), "ada@unilag.edu.ng"))
	assert.Equal(t, []string{"mx:unilag.edu.ng"}, r.lookups)
	assert.True(t, r.deadline, "lookup runs under the checker timeout")
}

func TestEmailDomainChecker_FallsBackToAddressRecord(t *testing.T) {
	r := &fakeResolver{ips: map[string][]net.IPAddr{"example.org": {{IP: net.ParseIP("93.184.216.34")}}}}
	ch := NewEmailDomainChecker(r, 0)

	assert.True(t, ch.Valid(context.Background(), "kofi@example.org"))
	assert.Equal(t, []string{"mx:example.org", "ip:example.org"}, r.lookups)
	assert.False(t, r.deadline)
}

func TestEmailDomainChecker_UnknownDomain(t *testing.T) {
	ch := NewEmailDomainChecker(&fakeResolver{}, time.Second)

	assert.False(t, ch.Valid(context.Background(), "y@nowhere.invalid"))
}

func TestEmailDomainChecker_CanceledContext(t *testing.T) {
	r := &fakeResolver{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, NewEmailDomainChecker(r, time.Second).Valid(ctx, "ada@unilag.edu.ng"))
	assert.Equal(t, []string{"mx:unilag.edu.ng"}, r.lookups, "no address lookup once the context is done")
}

func TestNewEmailDomainChecker_DefaultResolver(t *testing.T) {
	ch := NewEmailDomainChecker(nil, time.Second)

	assert.Same(t, net.DefaultResolver, ch.resolver)
}
