package responsive

type ButtonType string

const (
	ButtonSubmit    ButtonType = "submit"
	ButtonPrimary   ButtonType = "primary"
	ButtonSave      ButtonType = "save"
	ButtonSecondary ButtonType = "secondary"
	ButtonCancel    ButtonType = "cancel"
	ButtonDanger    ButtonType = "danger"
	ButtonGhost     ButtonType = "ghost"
	ButtonDefault   ButtonType = "default"
)

type ButtonSize string

const (
	SizeSmall  ButtonSize = "small"
	SizeMedium ButtonSize = "medium"
	SizeLarge  ButtonSize = "large"
)

const (
	DefaultButtonSize      = SizeMedium
	DefaultButtonFullWidth = false
)

type buttonStyle struct {
	variant string
	color   string
}

var buttonStyles = map[ButtonType]buttonStyle{
	ButtonSubmit:    {variant: "contained", color: "primary"},
	ButtonPrimary:   {variant: "contained", color: "primary"},
	ButtonSave:      {variant: "outlined", color: "primary"},
	ButtonSecondary: {variant: "outlined", color: "primary"},
	ButtonCancel:    {variant: "outlined", color: "inherit"},
	ButtonDanger:    {variant: "contained", color: "error"},
	ButtonGhost:     {variant: "text", color: "primary"},
	ButtonDefault:   {variant: "outlined", color: "primary"},
}

// ActionButtonProps describes a shared action control before breakpoint resolution.
type ActionButtonProps struct {
	Type      ButtonType        `json:"button_type,omitempty"`
	Size      Value[ButtonSize] `json:"size"`
	FullWidth Value[bool]       `json:"full_width"`
	Loading   bool              `json:"loading,omitempty"`
	Disabled  bool              `json:"disabled,omitempty"`
	HasIcon   bool              `json:"has_icon,omitempty"`
}

type ActionButton struct {
	Variant      string     `json:"variant"`
	Color        string     `json:"color"`
	Size         ButtonSize `json:"size"`
	FullWidth    bool       `json:"full_width"`
	Disabled     bool       `json:"disabled"`
	ShowIcon     bool       `json:"show_icon"`
	ShowProgress bool       `json:"show_progress"`
}

// ResolveActionButton resolves an action control for the active breakpoint.
func ResolveActionButton(props ActionButtonProps, active Breakpoint) ActionButton {
	style, ok := buttonStyles[props.Type]
	if !ok {
		style = buttonStyles[ButtonDefault]
	}

	return ActionButton{
		Variant:      style.variant,
		Color:        style.color,
		Size:         Resolve(props.Size, active, DefaultButtonSize),
		FullWidth:    Resolve(props.FullWidth, active, DefaultButtonFullWidth),
		Disabled:     props.Disabled || props.Loading,
		ShowIcon:     props.HasIcon && !props.Loading,
		ShowProgress: props.Loading,
	}
}
