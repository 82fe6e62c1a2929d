// Package scraper reads order tracking pages.
package scraper

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"syscall"
	"time"

	"shopcompare/internal/domain/order"
	"shopcompare/internal/pkg/config"
	"shopcompare/internal/pkg/errs"
	"shopcompare/internal/usecase/shared"

	"github.com/gocolly/colly/v2"
)

// ErrBlockedAddress is returned when an order page resolves to an address the
// scraper may not dial.
var ErrBlockedAddress = errs.New("order page address is not public")

type OrderStatusScraper struct {
	cfg       config.ScraperConfig
	transport *http.Transport
}

func NewOrderStatusScraper(cfg config.ScraperConfig) *OrderStatusScraper {
	dialer := &net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}
	if !cfg.AllowPrivateNetworks {
		dialer.Control = rejectNonPublic
	}
	return &OrderStatusScraper{
		cfg: cfg,
		// No proxy: the guard has to see the address actually dialed.
		transport: &http.Transport{
			Proxy:                 nil,
			DialContext:           dialer.DialContext,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: time.Second,
		},
	}
}

var _ shared.OrderStatusScraper = (*OrderStatusScraper)(nil)

// Scrape fetches the page and matches its visible text against the known
// statuses. Any fetch failure yields order.StatusUnavailable with the error.
func (s *OrderStatusScraper) Scrape(ctx context.Context, orderURL string) (string, error) {
	c := colly.NewCollector(
		colly.UserAgent(s.cfg.UserAgent),
		colly.StdlibContext(ctx),
		colly.AllowURLRevisit(),
	)
	c.WithTransport(s.transport)
	if s.cfg.Timeout > 0 {
		c.SetRequestTimeout(s.cfg.Timeout)
	}

	var (
		text     strings.Builder
		raw      string
		fetchErr error
	)
	c.OnResponse(func(r *colly.Response) {
		raw = string(r.Body)
	})
	c.OnHTML("body", func(e *colly.HTMLElement) {
		text.WriteString(e.Text)
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(orderURL); err != nil && fetchErr == nil {
		fetchErr = err
	}
	c.Wait()

	if fetchErr != nil {
		return order.StatusUnavailable, errs.Upstream(errs.Wrap(fetchErr, "fetch order page"))
	}

	page := text.String()
	if page == "" {
		page = raw
	}
	return order.DetectStatus(page), nil
}

// rejectNonPublic runs after name resolution, so it also covers redirects and
// hostnames that resolve to internal addresses.
func rejectNonPublic(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return err
	}
	if !IsPublicAddr(ip) {
		return errs.Wrapf(ErrBlockedAddress, "dial %s", ip)
	}
	return nil
}

// IsPublicAddr reports whether ip is a globally routable unicast address.
func IsPublicAddr(ip netip.Addr) bool {
	ip = ip.Unmap()
	switch {
	case !ip.IsValid(),
		ip.IsUnspecified(),
		ip.IsLoopback(),
		ip.IsPrivate(),
		ip.IsLinkLocalUnicast(),
		ip.IsLinkLocalMulticast(),
		ip.IsInterfaceLocalMulticast(),
		ip.IsMulticast():
		return false
	}
	// Carrier-grade NAT, 100.64.0.0/10.
	if ip.Is4() && ip.As4()[0] == 100 && ip.As4()[1]&0xc0 == 64 {
		return false
	}
	return true
}
