package skirmish

type Render struct {
	type_ string
}

func (render Render) GetType() string { return render.type_ }
