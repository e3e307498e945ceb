package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

const (
	bookingCodePrefix = "BK"
	orderCodePrefix   = "ORD"
)

// GenerateCode produces a human-readable code: prefix + YYYYMMDD + a 4-digit
// random suffix. It keeps sampling until exists reports the code unused. The
// check is not atomic with the later insert; the store's unique index is the
// authoritative guard and creators retry on Conflict.
func GenerateCode(ctx context.Context, prefix string, exists func(context.Context, string) (bool, error)) (string, error) {
	stamp := time.Now().Format("20060102")
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		code := fmt.Sprintf("%s%s%04d", prefix, stamp, rand.Intn(10000))
		taken, err := exists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
}
