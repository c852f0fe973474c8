package evtap

const _KeyState_name = "updownhold"

var _KeyState_index = [...]uint8{0, 2, 6, 10}

func (i KeyState) String() string {
	if i < 0 || i >= KeyState(len(_KeyState_index)-1) {
		return "unknown"
	}
	return _KeyState_name[_KeyState_index[i]:_KeyState_index[i+1]]
}
