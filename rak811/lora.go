package rak811

import (
	"context"
	"errors"
	"strings"

	"github.com/teepbee/go-rak811/at"
)

// Version returns the module firmware version.
func (d *Device) Version(ctx context.Context) (string, error) {
	resp, err := d.exec(ctx, at.Version())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.TrimPrefix(resp, at.OK)), nil
}

// Help returns the module's built-in command reference.
func (d *Device) Help(ctx context.Context) ([]string, error) {
	if err := d.expectOK(ctx, at.Help()); err != nil {
		return nil, err
	}
	return d.Info(ctx)
}

// Run leaves boot mode and starts normal operation.
func (d *Device) Run(ctx context.Context) error {
	return d.expectOK(ctx, at.Run())
}

// Join asks the module to join the LoRaWAN network using the configured
// join mode and keys. It blocks until the module reports the outcome, which
// for OTAA includes the full over-the-air exchange.
//
// A join refusal is an outcome, not a transport failure: when the module
// reports its join-failed code, Join returns (false, nil). Every other
// error kind propagates.
func (d *Device) Join(ctx context.Context) (bool, error) {
	if _, ok := ctx.Deadline(); !ok && d.joinTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.joinTimeout)
		defer cancel()
	}

	_, err := d.exec(ctx, at.Join())
	var modErr *ModuleError
	if errors.As(err, &modErr) && modErr.Code == at.CodeJoinFailed {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Radio and LoRaWAN configuration. Each setter wraps one command/response
// transaction; a failed transaction leaves the module's stored configuration
// for that parameter unchanged.

func (d *Device) SetRegion(ctx context.Context, r at.Region) error {
	return d.expectOK(ctx, at.SetRegion(r))
}

func (d *Device) SetJoinMode(ctx context.Context, m at.JoinMode) error {
	return d.expectOK(ctx, at.SetJoinMode(m))
}

func (d *Device) SetDataRate(ctx context.Context, dr int) error {
	return d.expectOK(ctx, at.SetDataRate(dr))
}

func (d *Device) SetADR(ctx context.Context, on bool) error {
	return d.expectOK(ctx, at.SetADR(on))
}

func (d *Device) SetClass(ctx context.Context, c at.Class) error {
	return d.expectOK(ctx, at.SetClass(c))
}

func (d *Device) SetConfirm(ctx context.Context, m at.ConfirmMode) error {
	return d.expectOK(ctx, at.SetConfirm(m))
}

func (d *Device) SetWorkMode(ctx context.Context, m at.WorkMode) error {
	return d.expectOK(ctx, at.SetWorkMode(m))
}

func (d *Device) SetTxPower(ctx context.Context, dbm int) error {
	return d.expectOK(ctx, at.SetTxPower(dbm))
}

func (d *Device) SetChannelMask(ctx context.Context, channel int, on bool) error {
	return d.expectOK(ctx, at.SetChannelMask(channel, on))
}

// Sleep puts the module to sleep or wakes it. Waking also produces a wake-up
// event on the event stream.
func (d *Device) Sleep(ctx context.Context, sleep bool) error {
	return d.expectOK(ctx, at.SetSleep(sleep))
}

// Restart soft-restarts the module. The module re-emits its boot banner,
// which lands on the info stream.
func (d *Device) Restart(ctx context.Context) error {
	return d.expectOK(ctx, at.Restart())
}

// SetOTAAKeys stores the over-the-air activation identity. EUIs and the
// application key are hex strings as printed on the module label.
func (d *Device) SetOTAAKeys(ctx context.Context, devEUI, appEUI, appKey string) error {
	for _, cmd := range []at.Command{
		at.SetDevEUI(devEUI),
		at.SetAppEUI(appEUI),
		at.SetAppKey(appKey),
	} {
		if err := d.expectOK(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

// SetABPKeys stores the activation-by-personalization identity.
func (d *Device) SetABPKeys(ctx context.Context, devAddr, nwksKey, appsKey string) error {
	for _, cmd := range []at.Command{
		at.SetDevAddr(devAddr),
		at.SetNwksKey(nwksKey),
		at.SetAppsKey(appsKey),
	} {
		if err := d.expectOK(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

// Status queries the module's LoRa status and returns the raw report lines.
func (d *Device) Status(ctx context.Context) ([]string, error) {
	if err := d.expectOK(ctx, at.GetStatus()); err != nil {
		return nil, err
	}
	return d.Info(ctx)
}

// Channels queries the module's channel configuration.
func (d *Device) Channels(ctx context.Context) ([]string, error) {
	if err := d.expectOK(ctx, at.GetChannels()); err != nil {
		return nil, err
	}
	return d.Info(ctx)
}

// DeviceStatus queries hardware status (voltage, sensors).
func (d *Device) DeviceStatus(ctx context.Context) ([]string, error) {
	if err := d.expectOK(ctx, at.GetDeviceStatus()); err != nil {
		return nil, err
	}
	return d.Info(ctx)
}

// SendLoRa transmits an uplink on the given port (1-223). Delivery
// confirmation, when confirmed mode is configured, arrives later as an
// event.
func (d *Device) SendLoRa(ctx context.Context, port int, data []byte) error {
	return d.expectOK(ctx, at.SendLoRa(port, data))
}

// SendUART forwards data out of one of the module's UARTs (index 1 or 3).
func (d *Device) SendUART(ctx context.Context, index int, data []byte) error {
	return d.expectOK(ctx, at.SendUART(index, data))
}

// SendP2P transmits data in LoRa P2P mode.
func (d *Device) SendP2P(ctx context.Context, data []byte) error {
	return d.expectOK(ctx, at.SendP2P(data))
}
