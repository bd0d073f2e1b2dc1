package charachorder

import (
	"fmt"
	"sort"
)

// Parameter is a device configuration variable accessed through the VAR
// command family.
type Parameter uint8

const (
	ParamEnableSerialHeader         Parameter = 0x01
	ParamEnableSerialLogging        Parameter = 0x02
	ParamEnableSerialDebugging      Parameter = 0x03
	ParamEnableSerialRaw            Parameter = 0x04
	ParamEnableSerialChord          Parameter = 0x05
	ParamEnableSerialKeyboard       Parameter = 0x06
	ParamEnableSerialMouse          Parameter = 0x07
	ParamEnableUSBHIDKeyboard       Parameter = 0x11
	ParamEnableCharacterEntry       Parameter = 0x12
	ParamGUICtrlSwapMode            Parameter = 0x13
	ParamKeyScanDuration            Parameter = 0x14
	ParamKeyDebouncePressDuration   Parameter = 0x15
	ParamKeyDebounceReleaseDuration Parameter = 0x16
	ParamKeyboardOutputDelay        Parameter = 0x17
	ParamEnableUSBHIDMouse          Parameter = 0x21
	ParamSlowMouseSpeed             Parameter = 0x22
	ParamFastMouseSpeed             Parameter = 0x23
	ParamEnableActiveMouse          Parameter = 0x24
	ParamMouseScrollSpeed           Parameter = 0x25
	ParamMousePollDuration          Parameter = 0x26
	ParamEnableChording             Parameter = 0x31
	ParamEnableChordingTimeout      Parameter = 0x32
	ParamChordingTimeoutTimer       Parameter = 0x33
	ParamChordPressTolerance        Parameter = 0x34
	ParamChordReleaseTolerance      Parameter = 0x35
	ParamEnableSpurring             Parameter = 0x41
	ParamEnableSpurringTimeout      Parameter = 0x42
	ParamSpurringTimeoutTimer       Parameter = 0x43
	ParamEnableArpeggiates          Parameter = 0x51
	ParamArpeggiateTolerance        Parameter = 0x52
	ParamEnableCompoundChording     Parameter = 0x61
	ParamCompoundTolerance          Parameter = 0x64
	ParamLEDBrightness              Parameter = 0x81
	ParamLEDColorCode               Parameter = 0x82
	ParamEnableLEDKeyHighlight      Parameter = 0x83
	ParamEnableLEDs                 Parameter = 0x84
	ParamOperatingSystem            Parameter = 0x91
	ParamEnableRealtimeFeedback     Parameter = 0x92
	ParamEnableReadyOnStartup       Parameter = 0x93
)

// parameterNames uses the Serial API documentation spelling, which is
// also how the CLI addresses parameters.
var parameterNames = map[Parameter]string{
	ParamEnableSerialHeader:         "enable_serial_header",
	ParamEnableSerialLogging:        "enable_serial_logging",
	ParamEnableSerialDebugging:      "enable_serial_debugging",
	ParamEnableSerialRaw:            "enable_serial_raw",
	ParamEnableSerialChord:          "enable_serial_chord",
	ParamEnableSerialKeyboard:       "enable_serial_keyboard",
	ParamEnableSerialMouse:          "enable_serial_mouse",
	ParamEnableUSBHIDKeyboard:       "enable_usb_hid_keyboard",
	ParamEnableCharacterEntry:       "enable_character_entry",
	ParamGUICtrlSwapMode:            "gui_ctrl_swap_mode",
	ParamKeyScanDuration:            "key_scan_duration",
	ParamKeyDebouncePressDuration:   "key_debounce_press_duration",
	ParamKeyDebounceReleaseDuration: "key_debounce_release_duration",
	ParamKeyboardOutputDelay:        "keyboard_output_character_microsecond_delays",
	ParamEnableUSBHIDMouse:          "enable_usb_hid_mouse",
	ParamSlowMouseSpeed:             "slow_mouse_speed",
	ParamFastMouseSpeed:             "fast_mouse_speed",
	ParamEnableActiveMouse:          "enable_active_mouse",
	ParamMouseScrollSpeed:           "mouse_scroll_speed",
	ParamMousePollDuration:          "mouse_poll_duration",
	ParamEnableChording:             "enable_chording",
	ParamEnableChordingTimeout:      "enable_chording_character_counter_timeout",
	ParamChordingTimeoutTimer:       "chording_character_counter_timeout_timer",
	ParamChordPressTolerance:        "chord_detection_press_tolerance",
	ParamChordReleaseTolerance:      "chord_detection_release_tolerance",
	ParamEnableSpurring:             "enable_spurring",
	ParamEnableSpurringTimeout:      "enable_spurring_character_counter_timeout",
	ParamSpurringTimeoutTimer:       "spurring_character_counter_timeout_timer",
	ParamEnableArpeggiates:          "enable_arpeggiates",
	ParamArpeggiateTolerance:        "arpeggiate_tolerance",
	ParamEnableCompoundChording:     "enable_compound_chording",
	ParamCompoundTolerance:          "compound_tolerance",
	ParamLEDBrightness:              "led_brightness",
	ParamLEDColorCode:               "led_color_code",
	ParamEnableLEDKeyHighlight:      "enable_led_key_highlight",
	ParamEnableLEDs:                 "enable_leds",
	ParamOperatingSystem:            "operating_system",
	ParamEnableRealtimeFeedback:     "enable_realtime_feedback",
	ParamEnableReadyOnStartup:       "enable_charachorder_ready_on_startup",
}

func (p Parameter) String() string {
	if name, ok := parameterNames[p]; ok {
		return name
	}
	return fmt.Sprintf("parameter(0x%02X)", uint8(p))
}

// ParameterByName resolves a parameter from its documentation name.
func ParameterByName(name string) (Parameter, error) {
	for p, n := range parameterNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown parameter %q", name)
}

// ParameterNames returns all known parameter names, sorted.
func ParameterNames() []string {
	names := make([]string, 0, len(parameterNames))
	for _, n := range parameterNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// KeymapCode selects one of the three keymap layers.
type KeymapCode uint8

const (
	KeymapPrimary   KeymapCode = 0xA1
	KeymapSecondary KeymapCode = 0xA2
	KeymapTertiary  KeymapCode = 0xA3
)

func (k KeymapCode) String() string {
	switch k {
	case KeymapPrimary:
		return "primary"
	case KeymapSecondary:
		return "secondary"
	case KeymapTertiary:
		return "tertiary"
	default:
		return fmt.Sprintf("keymap(0x%02X)", uint8(k))
	}
}

// ParseKeymapCode resolves a keymap layer from its name.
func ParseKeymapCode(name string) (KeymapCode, error) {
	switch name {
	case "primary", "A1", "a1":
		return KeymapPrimary, nil
	case "secondary", "A2", "a2":
		return KeymapSecondary, nil
	case "tertiary", "A3", "a3":
		return KeymapTertiary, nil
	}
	return 0, fmt.Errorf("unknown keymap layer %q (valid: primary, secondary, tertiary)", name)
}
