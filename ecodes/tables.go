package ecodes

// EV names the event types themselves. Handy for tooling that prints
// or configures by category.
var EV = NewNameTable(map[uint16][]string{
	EV_SYN:       {"EV_SYN"},
	EV_KEY:       {"EV_KEY"},
	EV_REL:       {"EV_REL"},
	EV_ABS:       {"EV_ABS"},
	EV_MSC:       {"EV_MSC"},
	EV_SW:        {"EV_SW"},
	EV_LED:       {"EV_LED"},
	EV_SND:       {"EV_SND"},
	EV_REP:       {"EV_REP"},
	EV_FF:        {"EV_FF"},
	EV_PWR:       {"EV_PWR"},
	EV_FF_STATUS: {"EV_FF_STATUS"},
})

// SYN names the synchronization codes.
var SYN = NewNameTable(map[uint16][]string{
	SYN_REPORT:    {"SYN_REPORT"},
	SYN_CONFIG:    {"SYN_CONFIG"},
	SYN_MT_REPORT: {"SYN_MT_REPORT"},
	SYN_DROPPED:   {"SYN_DROPPED"},
})

// REL names the relative axes.
var REL = NewNameTable(map[uint16][]string{
	REL_X:             {"REL_X"},
	REL_Y:             {"REL_Y"},
	REL_Z:             {"REL_Z"},
	REL_RX:            {"REL_RX"},
	REL_RY:            {"REL_RY"},
	REL_RZ:            {"REL_RZ"},
	REL_HWHEEL:        {"REL_HWHEEL"},
	REL_DIAL:          {"REL_DIAL"},
	REL_WHEEL:         {"REL_WHEEL"},
	REL_MISC:          {"REL_MISC"},
	REL_WHEEL_HI_RES:  {"REL_WHEEL_HI_RES"},
	REL_HWHEEL_HI_RES: {"REL_HWHEEL_HI_RES"},
})

// ABS names the absolute axes.
var ABS = NewNameTable(map[uint16][]string{
	ABS_X:              {"ABS_X"},
	ABS_Y:              {"ABS_Y"},
	ABS_Z:              {"ABS_Z"},
	ABS_RX:             {"ABS_RX"},
	ABS_RY:             {"ABS_RY"},
	ABS_RZ:             {"ABS_RZ"},
	ABS_THROTTLE:       {"ABS_THROTTLE"},
	ABS_RUDDER:         {"ABS_RUDDER"},
	ABS_WHEEL:          {"ABS_WHEEL"},
	ABS_GAS:            {"ABS_GAS"},
	ABS_BRAKE:          {"ABS_BRAKE"},
	ABS_HAT0X:          {"ABS_HAT0X"},
	ABS_HAT0Y:          {"ABS_HAT0Y"},
	ABS_HAT1X:          {"ABS_HAT1X"},
	ABS_HAT1Y:          {"ABS_HAT1Y"},
	ABS_HAT2X:          {"ABS_HAT2X"},
	ABS_HAT2Y:          {"ABS_HAT2Y"},
	ABS_HAT3X:          {"ABS_HAT3X"},
	ABS_HAT3Y:          {"ABS_HAT3Y"},
	ABS_PRESSURE:       {"ABS_PRESSURE"},
	ABS_DISTANCE:       {"ABS_DISTANCE"},
	ABS_TILT_X:         {"ABS_TILT_X"},
	ABS_TILT_Y:         {"ABS_TILT_Y"},
	ABS_TOOL_WIDTH:     {"ABS_TOOL_WIDTH"},
	ABS_VOLUME:         {"ABS_VOLUME"},
	ABS_PROFILE:        {"ABS_PROFILE"},
	ABS_MISC:           {"ABS_MISC"},
	ABS_MT_SLOT:        {"ABS_MT_SLOT"},
	ABS_MT_TOUCH_MAJOR: {"ABS_MT_TOUCH_MAJOR"},
	ABS_MT_TOUCH_MINOR: {"ABS_MT_TOUCH_MINOR"},
	ABS_MT_WIDTH_MAJOR: {"ABS_MT_WIDTH_MAJOR"},
	ABS_MT_WIDTH_MINOR: {"ABS_MT_WIDTH_MINOR"},
	ABS_MT_ORIENTATION: {"ABS_MT_ORIENTATION"},
	ABS_MT_POSITION_X:  {"ABS_MT_POSITION_X"},
	ABS_MT_POSITION_Y:  {"ABS_MT_POSITION_Y"},
	ABS_MT_TOOL_TYPE:   {"ABS_MT_TOOL_TYPE"},
	ABS_MT_BLOB_ID:     {"ABS_MT_BLOB_ID"},
	ABS_MT_TRACKING_ID: {"ABS_MT_TRACKING_ID"},
	ABS_MT_PRESSURE:    {"ABS_MT_PRESSURE"},
	ABS_MT_DISTANCE:    {"ABS_MT_DISTANCE"},
	ABS_MT_TOOL_X:      {"ABS_MT_TOOL_X"},
	ABS_MT_TOOL_Y:      {"ABS_MT_TOOL_Y"},
})

// KEY names keys and buttons. Codes that share a value list every
// alias; the first entry is the one classification resolves to.
var KEY = NewNameTable(map[uint16][]string{
	KEY_RESERVED:       {"KEY_RESERVED"},
	KEY_ESC:            {"KEY_ESC"},
	KEY_1:              {"KEY_1"},
	KEY_2:              {"KEY_2"},
	KEY_3:              {"KEY_3"},
	KEY_4:              {"KEY_4"},
	KEY_5:              {"KEY_5"},
	KEY_6:              {"KEY_6"},
	KEY_7:              {"KEY_7"},
	KEY_8:              {"KEY_8"},
	KEY_9:              {"KEY_9"},
	KEY_0:              {"KEY_0"},
	KEY_MINUS:          {"KEY_MINUS"},
	KEY_EQUAL:          {"KEY_EQUAL"},
	KEY_BACKSPACE:      {"KEY_BACKSPACE"},
	KEY_TAB:            {"KEY_TAB"},
	KEY_Q:              {"KEY_Q"},
	KEY_W:              {"KEY_W"},
	KEY_E:              {"KEY_E"},
	KEY_R:              {"KEY_R"},
	KEY_T:              {"KEY_T"},
	KEY_Y:              {"KEY_Y"},
	KEY_U:              {"KEY_U"},
	KEY_I:              {"KEY_I"},
	KEY_O:              {"KEY_O"},
	KEY_P:              {"KEY_P"},
	KEY_LEFTBRACE:      {"KEY_LEFTBRACE"},
	KEY_RIGHTBRACE:     {"KEY_RIGHTBRACE"},
	KEY_ENTER:          {"KEY_ENTER"},
	KEY_LEFTCTRL:       {"KEY_LEFTCTRL"},
	KEY_A:              {"KEY_A"},
	KEY_S:              {"KEY_S"},
	KEY_D:              {"KEY_D"},
	KEY_F:              {"KEY_F"},
	KEY_G:              {"KEY_G"},
	KEY_H:              {"KEY_H"},
	KEY_J:              {"KEY_J"},
	KEY_K:              {"KEY_K"},
	KEY_L:              {"KEY_L"},
	KEY_SEMICOLON:      {"KEY_SEMICOLON"},
	KEY_APOSTROPHE:     {"KEY_APOSTROPHE"},
	KEY_GRAVE:          {"KEY_GRAVE"},
	KEY_LEFTSHIFT:      {"KEY_LEFTSHIFT"},
	KEY_BACKSLASH:      {"KEY_BACKSLASH"},
	KEY_Z:              {"KEY_Z"},
	KEY_X:              {"KEY_X"},
	KEY_C:              {"KEY_C"},
	KEY_V:              {"KEY_V"},
	KEY_B:              {"KEY_B"},
	KEY_N:              {"KEY_N"},
	KEY_M:              {"KEY_M"},
	KEY_COMMA:          {"KEY_COMMA"},
	KEY_DOT:            {"KEY_DOT"},
	KEY_SLASH:          {"KEY_SLASH"},
	KEY_RIGHTSHIFT:     {"KEY_RIGHTSHIFT"},
	KEY_KPASTERISK:     {"KEY_KPASTERISK"},
	KEY_LEFTALT:        {"KEY_LEFTALT"},
	KEY_SPACE:          {"KEY_SPACE"},
	KEY_CAPSLOCK:       {"KEY_CAPSLOCK"},
	KEY_F1:             {"KEY_F1"},
	KEY_F2:             {"KEY_F2"},
	KEY_F3:             {"KEY_F3"},
	KEY_F4:             {"KEY_F4"},
	KEY_F5:             {"KEY_F5"},
	KEY_F6:             {"KEY_F6"},
	KEY_F7:             {"KEY_F7"},
	KEY_F8:             {"KEY_F8"},
	KEY_F9:             {"KEY_F9"},
	KEY_F10:            {"KEY_F10"},
	KEY_NUMLOCK:        {"KEY_NUMLOCK"},
	KEY_SCROLLLOCK:     {"KEY_SCROLLLOCK"},
	KEY_KP7:            {"KEY_KP7"},
	KEY_KP8:            {"KEY_KP8"},
	KEY_KP9:            {"KEY_KP9"},
	KEY_KPMINUS:        {"KEY_KPMINUS"},
	KEY_KP4:            {"KEY_KP4"},
	KEY_KP5:            {"KEY_KP5"},
	KEY_KP6:            {"KEY_KP6"},
	KEY_KPPLUS:         {"KEY_KPPLUS"},
	KEY_KP1:            {"KEY_KP1"},
	KEY_KP2:            {"KEY_KP2"},
	KEY_KP3:            {"KEY_KP3"},
	KEY_KP0:            {"KEY_KP0"},
	KEY_KPDOT:          {"KEY_KPDOT"},
	KEY_ZENKAKUHANKAKU: {"KEY_ZENKAKUHANKAKU"},
	KEY_102ND:          {"KEY_102ND"},
	KEY_F11:            {"KEY_F11"},
	KEY_F12:            {"KEY_F12"},
	KEY_KPENTER:        {"KEY_KPENTER"},
	KEY_RIGHTCTRL:      {"KEY_RIGHTCTRL"},
	KEY_KPSLASH:        {"KEY_KPSLASH"},
	KEY_SYSRQ:          {"KEY_SYSRQ"},
	KEY_RIGHTALT:       {"KEY_RIGHTALT"},
	KEY_LINEFEED:       {"KEY_LINEFEED"},
	KEY_HOME:           {"KEY_HOME"},
	KEY_UP:             {"KEY_UP"},
	KEY_PAGEUP:         {"KEY_PAGEUP"},
	KEY_LEFT:           {"KEY_LEFT"},
	KEY_RIGHT:          {"KEY_RIGHT"},
	KEY_END:            {"KEY_END"},
	KEY_DOWN:           {"KEY_DOWN"},
	KEY_PAGEDOWN:       {"KEY_PAGEDOWN"},
	KEY_INSERT:         {"KEY_INSERT"},
	KEY_DELETE:         {"KEY_DELETE"},
	KEY_MACRO:          {"KEY_MACRO"},
	KEY_MUTE:           {"KEY_MUTE", "KEY_MIN_INTERESTING"},
	KEY_VOLUMEDOWN:     {"KEY_VOLUMEDOWN"},
	KEY_VOLUMEUP:       {"KEY_VOLUMEUP"},
	KEY_POWER:          {"KEY_POWER"},
	KEY_KPEQUAL:        {"KEY_KPEQUAL"},
	KEY_KPPLUSMINUS:    {"KEY_KPPLUSMINUS"},
	KEY_PAUSE:          {"KEY_PAUSE"},
	KEY_SCALE:          {"KEY_SCALE"},
	KEY_KPCOMMA:        {"KEY_KPCOMMA"},
	KEY_LEFTMETA:       {"KEY_LEFTMETA"},
	KEY_RIGHTMETA:      {"KEY_RIGHTMETA"},
	KEY_COMPOSE:        {"KEY_COMPOSE"},

	BTN_0: {"BTN_0", "BTN_MISC"},
	BTN_1: {"BTN_1"},
	BTN_2: {"BTN_2"},
	BTN_3: {"BTN_3"},
	BTN_4: {"BTN_4"},
	BTN_5: {"BTN_5"},
	BTN_6: {"BTN_6"},
	BTN_7: {"BTN_7"},
	BTN_8: {"BTN_8"},
	BTN_9: {"BTN_9"},

	BTN_LEFT:    {"BTN_LEFT", "BTN_MOUSE"},
	BTN_RIGHT:   {"BTN_RIGHT"},
	BTN_MIDDLE:  {"BTN_MIDDLE"},
	BTN_SIDE:    {"BTN_SIDE"},
	BTN_EXTRA:   {"BTN_EXTRA"},
	BTN_FORWARD: {"BTN_FORWARD"},
	BTN_BACK:    {"BTN_BACK"},
	BTN_TASK:    {"BTN_TASK"},

	BTN_SOUTH:  {"BTN_SOUTH", "BTN_A", "BTN_GAMEPAD"},
	BTN_EAST:   {"BTN_EAST", "BTN_B"},
	BTN_C:      {"BTN_C"},
	BTN_NORTH:  {"BTN_NORTH", "BTN_X"},
	BTN_WEST:   {"BTN_WEST", "BTN_Y"},
	BTN_Z:      {"BTN_Z"},
	BTN_TL:     {"BTN_TL"},
	BTN_TR:     {"BTN_TR"},
	BTN_TL2:    {"BTN_TL2"},
	BTN_TR2:    {"BTN_TR2"},
	BTN_SELECT: {"BTN_SELECT"},
	BTN_START:  {"BTN_START"},
	BTN_MODE:   {"BTN_MODE"},
	BTN_THUMBL: {"BTN_THUMBL"},
	BTN_THUMBR: {"BTN_THUMBR"},

	BTN_TOOL_PEN:    {"BTN_TOOL_PEN"},
	BTN_TOOL_RUBBER: {"BTN_TOOL_RUBBER"},
	BTN_TOOL_BRUSH:  {"BTN_TOOL_BRUSH"},
	BTN_TOOL_PENCIL: {"BTN_TOOL_PENCIL"},
	BTN_TOOL_FINGER: {"BTN_TOOL_FINGER"},
	BTN_TOOL_MOUSE:  {"BTN_TOOL_MOUSE"},
	BTN_TOOL_LENS:   {"BTN_TOOL_LENS"},
	BTN_TOUCH:       {"BTN_TOUCH"},
	BTN_STYLUS:      {"BTN_STYLUS"},
	BTN_STYLUS2:     {"BTN_STYLUS2"},
})

// TableFor returns the name table for an event type, or nil when the
// type has none.
func TableFor(typ uint16) *NameTable {
	switch typ {
	case EV_KEY:
		return KEY
	case EV_REL:
		return REL
	case EV_ABS:
		return ABS
	case EV_SYN:
		return SYN
	}
	return nil
}
