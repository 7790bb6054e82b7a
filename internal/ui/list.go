package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"repertorio/internal/models"
)

var (
	_ list.Item = workItem{}
	_ list.Item = rightHolderItem{}
)

// workItem wraps [models.PersistedWork] to implement [list.Item].
type workItem struct {
	work *models.PersistedWork
}

func (i workItem) FilterValue() string { return i.work.Title() }
func (i workItem) Title() string {
	title := i.work.Title()
	if title == "" {
		title = fmt.Sprintf("Work %s", i.work.RegistryWorkID())
	}
	return title
}
func (i workItem) Description() string {
	desc := i.work.ExternalCode()
	if desc == "" {
		desc = "no code"
	}
	if status := i.work.Status(); status != "" {
		desc = fmt.Sprintf("%s • %s", desc, status)
	}
	return desc
}

// rightHolderItem wraps [models.PersistedRightHolder] to implement [list.Item].
type rightHolderItem struct {
	holder *models.PersistedRightHolder
}

func (i rightHolderItem) FilterValue() string { return i.holder.Name() }
func (i rightHolderItem) Title() string {
	name := i.holder.Name()
	if pseudonym := i.holder.RightHolder().PrimaryPseudonym(); pseudonym != "" {
		name = fmt.Sprintf("%s (%s)", name, pseudonym)
	}
	return name
}
func (i rightHolderItem) Description() string {
	desc := fmt.Sprintf("%s • %v%%", i.holder.Role(), i.holder.Share())
	if society := i.holder.RightHolder().SocietyName; society != "" {
		desc = fmt.Sprintf("%s • %s", desc, society)
	}
	return desc
}
