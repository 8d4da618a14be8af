package at

// ResponseCode is a numeric error code reported by the module on an
// "ERROR:<code>" line.
type ResponseCode int

const (
	CodeUnknown       ResponseCode = -1 // catch all
	CodeBadCommand    ResponseCode = 1
	CodeInvalidParam  ResponseCode = 2
	CodeRdWrFlash     ResponseCode = 3
	CodeRdWrIIC       ResponseCode = 4
	CodeSendUART      ResponseCode = 5
	CodeBLEState      ResponseCode = 41
	CodeLoRaBusy      ResponseCode = 80
	CodeLoRaSvcUnk    ResponseCode = 81
	CodeLoRaParam     ResponseCode = 82
	CodeLoRaFreq      ResponseCode = 83
	CodeLoRaDataRate  ResponseCode = 84
	CodeLoRaFreqDR    ResponseCode = 85
	CodeNotJoined     ResponseCode = 86
	CodePacketTooLong ResponseCode = 87
	CodeSvcClosed     ResponseCode = 88
	CodeRegion        ResponseCode = 89
	CodeDutyCycle     ResponseCode = 90
	CodeNoValidChan   ResponseCode = 91
	CodeNoFreeChan    ResponseCode = 92
	CodeStatus        ResponseCode = 93
	CodeTxTimeout     ResponseCode = 94
	CodeRx1Timeout    ResponseCode = 95
	CodeRx2Timeout    ResponseCode = 96
	CodeRecvRx1       ResponseCode = 97
	CodeRecvRx2       ResponseCode = 98
	CodeJoinFailed    ResponseCode = 99
	CodeDownRepeated  ResponseCode = 100
	CodePayloadSize   ResponseCode = 101
	CodeFramesLost    ResponseCode = 102
	CodeAddress       ResponseCode = 103
	CodeMIC           ResponseCode = 104
)

var responseMessages = map[ResponseCode]string{
	CodeUnknown:       "Unknown",
	CodeBadCommand:    "Bad AT command",
	CodeInvalidParam:  "Invalid parameter in AT command",
	CodeRdWrFlash:     "Error reading or writing flash",
	CodeRdWrIIC:       "Error reading or writing through IIC",
	CodeSendUART:      "Error sending through UART",
	CodeBLEState:      "BLE in invalid state",
	CodeLoRaBusy:      "LoRa busy",
	CodeLoRaSvcUnk:    "LoRa service unknown",
	CodeLoRaParam:     "LoRa parameters invalid",
	CodeLoRaFreq:      "LoRa frequency invalid",
	CodeLoRaDataRate:  "LoRa datarate invalid",
	CodeLoRaFreqDR:    "LoRa frequency and datarate invalid",
	CodeNotJoined:     "Device has not joined a LoRa network",
	CodePacketTooLong: "Packet too long to be sent",
	CodeSvcClosed:     "Service closed by server",
	CodeRegion:        "Unsupported region",
	CodeDutyCycle:     "Duty cycle restricted",
	CodeNoValidChan:   "No valid channel can be found",
	CodeNoFreeChan:    "No free channel found",
	CodeStatus:        "Status is error",
	CodeTxTimeout:     "LoRa transmit timeout",
	CodeRx1Timeout:    "LoRa RX1 timeout",
	CodeRx2Timeout:    "LoRa RX2 timeout",
	CodeRecvRx1:       "Error receiving in RX1",
	CodeRecvRx2:       "Error receiving in RX2",
	CodeJoinFailed:    "LoRa join failed",
	CodeDownRepeated:  "Downlink repeated",
	CodePayloadSize:   "Payload size error with transmit DR",
	CodeFramesLost:    "Too many downlink frames lost",
	CodeAddress:       "Address fail",
	CodeMIC:           "Error verifying MIC",
}

// Message returns the vendor description for the code, or the catch-all
// description when the code is not in the table.
func (c ResponseCode) Message() string {
	if msg, ok := responseMessages[c]; ok {
		return msg
	}
	return responseMessages[CodeUnknown]
}

// EventCode is the status field of an "at+recv=" event line.
type EventCode int

const (
	EventRecvData      EventCode = 0
	EventTxConfirmed   EventCode = 1
	EventTxUnconfirmed EventCode = 2
	EventJoinedSuccess EventCode = 3
	EventJoinedFailed  EventCode = 4
	EventTxTimeout     EventCode = 5
	EventRx2Timeout    EventCode = 6
	EventDownRepeated  EventCode = 7
	EventWakeUp        EventCode = 8
	EventP2PComplete   EventCode = 9
	EventUnknown       EventCode = 100
)

var eventMessages = map[EventCode]string{
	EventRecvData:      "Received data",
	EventTxConfirmed:   "TX confirmed",
	EventTxUnconfirmed: "TX unconfirmed",
	EventJoinedSuccess: "Joined network successfully",
	EventJoinedFailed:  "Failed to join network",
	EventTxTimeout:     "TX timeout",
	EventRx2Timeout:    "RX2 timeout",
	EventDownRepeated:  "Downlink repeated",
	EventWakeUp:        "Wake up",
	EventP2PComplete:   "P2P TX complete",
	EventUnknown:       "Unknown",
}

// Message returns the description for the event status, or the catch-all
// description when the status is not in the table.
func (c EventCode) Message() string {
	if msg, ok := eventMessages[c]; ok {
		return msg
	}
	return eventMessages[EventUnknown]
}
