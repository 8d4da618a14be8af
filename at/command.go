package at

import (
	"encoding/hex"
	"fmt"
)

// Command is a single RAK811 AT command, without the "at+" prefix or the
// CRLF terminator. Commands are built through the typed constructors below
// so that parameter shapes are checked at compile time instead of being
// assembled from free-form strings.
type Command string

// Wire returns the bytes to write to the serial channel for this command.
func (c Command) Wire() []byte {
	return []byte(Prefix + string(c) + CRLF)
}

// Region is a LoRaWAN frequency band identifier accepted by the module.
type Region string

const (
	RegionEU433 Region = "EU433"
	RegionCN470 Region = "CN470"
	RegionIN865 Region = "IN865"
	RegionEU868 Region = "EU868"
	RegionUS915 Region = "US915"
	RegionAU915 Region = "AU915"
	RegionKR920 Region = "KR920"
	RegionAS923 Region = "AS923"
)

// JoinMode selects between over-the-air activation and activation by
// personalization.
type JoinMode int

const (
	OTAA JoinMode = 0
	ABP  JoinMode = 1
)

// Class is the LoRaWAN device class. Class B is not supported by the module.
type Class int

const (
	ClassA Class = 0
	ClassB Class = 1
	ClassC Class = 2
)

// ConfirmMode selects the uplink confirmation type.
type ConfirmMode int

const (
	Unconfirmed ConfirmMode = 0
	Confirmed   ConfirmMode = 1
	Multicast   ConfirmMode = 2
	Proprietary ConfirmMode = 3
)

// WorkMode switches the radio between LoRaWAN and LoRa P2P operation.
type WorkMode int

const (
	ModeLoRaWAN WorkMode = 0
	ModeLoRaP2P WorkMode = 1
)

// System commands.

func Version() Command { return "version" }
func Help() Command    { return "help" }
func Run() Command     { return "run" }
func Join() Command    { return "join" }

// Configuration commands (at+set_config=...).

func SetRegion(r Region) Command {
	return Command(fmt.Sprintf("set_config=lora:region:%s", r))
}

func SetJoinMode(m JoinMode) Command {
	return Command(fmt.Sprintf("set_config=lora:join_mode:%d", m))
}

func SetDevEUI(eui string) Command {
	return Command(fmt.Sprintf("set_config=lora:dev_eui:%s", eui))
}

func SetAppEUI(eui string) Command {
	return Command(fmt.Sprintf("set_config=lora:app_eui:%s", eui))
}

func SetAppKey(key string) Command {
	return Command(fmt.Sprintf("set_config=lora:app_key:%s", key))
}

func SetDevAddr(addr string) Command {
	return Command(fmt.Sprintf("set_config=lora:dev_addr:%s", addr))
}

func SetNwksKey(key string) Command {
	return Command(fmt.Sprintf("set_config=lora:nwks_key:%s", key))
}

func SetAppsKey(key string) Command {
	return Command(fmt.Sprintf("set_config=lora:apps_key:%s", key))
}

func SetDataRate(dr int) Command {
	return Command(fmt.Sprintf("set_config=lora:dr:%d", dr))
}

func SetADR(on bool) Command {
	status := 0
	if on {
		status = 1
	}
	return Command(fmt.Sprintf("set_config=lora:adr:%d", status))
}

func SetClass(c Class) Command {
	return Command(fmt.Sprintf("set_config=lora:class:%d", c))
}

func SetConfirm(m ConfirmMode) Command {
	return Command(fmt.Sprintf("set_config=lora:confirm:%d", m))
}

func SetWorkMode(m WorkMode) Command {
	return Command(fmt.Sprintf("set_config=lora:work_mode:%d", m))
}

func SetTxPower(dbm int) Command {
	return Command(fmt.Sprintf("set_config=lora:tx_power:%d", dbm))
}

func SetChannelMask(channel int, on bool) Command {
	status := 0
	if on {
		status = 1
	}
	return Command(fmt.Sprintf("set_config=lora:ch_mask:%d:%d", channel, status))
}

func SetSleep(sleep bool) Command {
	status := 0
	if sleep {
		status = 1
	}
	return Command(fmt.Sprintf("set_config=device:sleep:%d", status))
}

func Restart() Command {
	return "set_config=device:restart"
}

// Query commands (at+get_config=...).

func GetStatus() Command       { return "get_config=lora:status" }
func GetChannels() Command     { return "get_config=lora:channel" }
func GetDeviceStatus() Command { return "get_config=device:status" }

// Data transmission commands (at+send=...). Payloads go on the wire
// hex-encoded.

func SendLoRa(port int, data []byte) Command {
	return Command(fmt.Sprintf("send=lora:%d:%s", port, hex.EncodeToString(data)))
}

func SendUART(index int, data []byte) Command {
	return Command(fmt.Sprintf("send=uart:%d:%s", index, hex.EncodeToString(data)))
}

func SendP2P(data []byte) Command {
	return Command(fmt.Sprintf("send=lorap2p:%s", hex.EncodeToString(data)))
}
