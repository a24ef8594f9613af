package utils

import (
	"context"
	"fmt"
	"net"
	"regexp"
	"time"

	"github.com/mpapenbr/gc-segments/log"
)

const defaultPostgresPort = "5432"

var dbURLRegex = regexp.MustCompile(
	`^postgres(?:ql)?://(?:.*@)?(?P<host>[^:/?]+)(?::(?P<port>\d+))?(?:[/?].*)?$`)

// WaitForTCP dials addr until a connection succeeds or the timeout is reached.
func WaitForTCP(addr string, timeout time.Duration) error {
	if addr == "" {
		return fmt.Errorf("no address to wait for")
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	start := time.Now()
	log.Debug("wait for tcp connection",
		log.String("addr", addr),
		log.String("timeout", timeout.String()))
	var d net.Dialer
	for {
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err == nil {
			conn.Close()
			log.Debug("tcp connection successful",
				log.String("addr", addr),
				log.String("duration", time.Since(start).String()))
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s could not be reached after %v", addr, timeout)
		case <-time.After(200 * time.Millisecond):
		}
	}
}

// ExtractFromDBURL returns host:port of a postgres connection url.
// Returns an empty string if the url could not be parsed.
func ExtractFromDBURL(url string) string {
	match := dbURLRegex.FindStringSubmatch(url)
	if match == nil {
		return ""
	}
	host := match[dbURLRegex.SubexpIndex("host")]
	port := match[dbURLRegex.SubexpIndex("port")]
	if port == "" {
		port = defaultPostgresPort
	}
	return net.JoinHostPort(host, port)
}
