package main

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"djbdns2bind/internal/config"
	"djbdns2bind/internal/logging"
	"djbdns2bind/tinydns"
)

// translate parses tinydns data from in and writes the zone file to out.
// Nothing reaches out unless every step succeeded.
func translate(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config) (err error) {
	startAt := time.Now()
	logger := logging.FromContext(ctx)
	logger.Debug(ctx, "translate started", "check", cfg.Check, "defaultTTL", cfg.DefaultTTL)
	defer func() {
		if err != nil {
			logger.Debug(ctx, "translate failed", "elapsed", time.Since(startAt).Seconds())
			return
		}
		logger.Debug(ctx, "translate finished", "elapsed", time.Since(startAt).Seconds())
	}()

	parser := tinydns.NewParser(tinydns.WithDefaultTTL(cfg.DefaultTTL))
	rs, err := parser.Parse(ctx, in)
	if err != nil {
		return dataError(errors.Wrap(err, "parsing data"))
	}

	var buf bytes.Buffer
	if err := tinydns.WriteZone(&buf, rs); err != nil {
		return dataError(errors.Wrap(err, "formatting zone"))
	}

	if cfg.Check {
		rrs, err := tinydns.CheckZone(bytes.NewReader(buf.Bytes()), rs.Domain)
		if err != nil {
			return dataError(err)
		}
		logger.Info(ctx, "zone check passed", "domain", rs.Domain, "records", len(rrs))
	}

	if _, err := buf.WriteTo(out); err != nil {
		return errors.Wrap(err, "writing zone")
	}
	return nil
}
