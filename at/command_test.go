package at_test

import (
	"testing"

	"github.com/teepbee/go-rak811/at"
)

func TestCommandBuilders(t *testing.T) {
	tests := []struct {
		name     string
		cmd      at.Command
		expected string
	}{
		{name: "Version", cmd: at.Version(), expected: "version"},
		{name: "Help", cmd: at.Help(), expected: "help"},
		{name: "Run", cmd: at.Run(), expected: "run"},
		{name: "Join", cmd: at.Join(), expected: "join"},
		{name: "Set region", cmd: at.SetRegion(at.RegionEU868), expected: "set_config=lora:region:EU868"},
		{name: "Set join mode OTAA", cmd: at.SetJoinMode(at.OTAA), expected: "set_config=lora:join_mode:0"},
		{name: "Set join mode ABP", cmd: at.SetJoinMode(at.ABP), expected: "set_config=lora:join_mode:1"},
		{name: "Set device EUI", cmd: at.SetDevEUI("60C5A8FFFE000001"), expected: "set_config=lora:dev_eui:60C5A8FFFE000001"},
		{name: "Set app key", cmd: at.SetAppKey("8AFF0AA0CC0123456789ABCDEF000000"), expected: "set_config=lora:app_key:8AFF0AA0CC0123456789ABCDEF000000"},
		{name: "Set device address", cmd: at.SetDevAddr("260125D7"), expected: "set_config=lora:dev_addr:260125D7"},
		{name: "Set data rate", cmd: at.SetDataRate(5), expected: "set_config=lora:dr:5"},
		{name: "ADR on", cmd: at.SetADR(true), expected: "set_config=lora:adr:1"},
		{name: "ADR off", cmd: at.SetADR(false), expected: "set_config=lora:adr:0"},
		{name: "Class C", cmd: at.SetClass(at.ClassC), expected: "set_config=lora:class:2"},
		{name: "Confirmed uplinks", cmd: at.SetConfirm(at.Confirmed), expected: "set_config=lora:confirm:1"},
		{name: "LoRaWAN work mode", cmd: at.SetWorkMode(at.ModeLoRaWAN), expected: "set_config=lora:work_mode:0"},
		{name: "TX power", cmd: at.SetTxPower(14), expected: "set_config=lora:tx_power:14"},
		{name: "Channel mask off", cmd: at.SetChannelMask(3, false), expected: "set_config=lora:ch_mask:3:0"},
		{name: "Sleep", cmd: at.SetSleep(true), expected: "set_config=device:sleep:1"},
		{name: "Restart", cmd: at.Restart(), expected: "set_config=device:restart"},
		{name: "Status query", cmd: at.GetStatus(), expected: "get_config=lora:status"},
		{name: "Channel query", cmd: at.GetChannels(), expected: "get_config=lora:channel"},
		{name: "Device status query", cmd: at.GetDeviceStatus(), expected: "get_config=device:status"},
		{name: "Send LoRa hex-encodes payload", cmd: at.SendLoRa(5, []byte("Hello")), expected: "send=lora:5:48656c6c6f"},
		{name: "Send UART", cmd: at.SendUART(3, []byte{0x01, 0xA1}), expected: "send=uart:3:01a1"},
		{name: "Send P2P", cmd: at.SendP2P([]byte{0xFF}), expected: "send=lorap2p:ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.cmd) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, string(tt.cmd))
			}
		})
	}
}

func TestCommandWire(t *testing.T) {
	wire := at.SendLoRa(1, []byte("Hello")).Wire()
	expected := "at+send=lora:1:48656c6c6f\r\n"
	if string(wire) != expected {
		t.Errorf("expected %q, got %q", expected, string(wire))
	}
}
