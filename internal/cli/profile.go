package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/minsukang/newlife/internal/logger"
	"github.com/minsukang/newlife/internal/models"
	"github.com/minsukang/newlife/internal/storage"
)

type ProfileCmd struct {
	Signup ProfileSignupCmd `cmd:"" help:"Create the local profile."`
	Show   ProfileShowCmd   `cmd:"" help:"Show the stored profile." default:"1"`
	Edit   ProfileEditCmd   `cmd:"" help:"Edit the stored profile."`
	Login  ProfileLoginCmd  `cmd:"" help:"Check credentials against the stored profile."`
}

type ProfileSignupCmd struct{}

func (c *ProfileSignupCmd) Run(ctx *Context) error {
	if _, err := ctx.Store.GetProfile(); err == nil {
		return fmt.Errorf("a profile already exists; use 'newlife profile edit'")
	} else if !errors.Is(err, storage.ErrNoProfile) {
		return err
	}

	profile := models.UserProfile{
		Gender: models.GenderMale,
		Region: models.RegionSeoul,
	}

	form := profileForm(&profile, true)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	if profile.UserID == "" || profile.Password == "" || profile.Name == "" {
		return fmt.Errorf("user id, password, and name are required")
	}

	profile.ID = uuid.New().String()
	profile.JoinedAt = time.Now().UTC()

	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s! Profile created.\n", profile.Name)
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	profile, err := ctx.Store.GetProfile()
	if errors.Is(err, storage.ErrNoProfile) {
		fmt.Println("No profile yet. Run 'newlife profile signup' first.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("User id:     %s\n", profile.UserID)
	fmt.Printf("Name:        %s\n", profile.Name)
	fmt.Printf("Age:         %s\n", profile.Age)
	fmt.Printf("Affiliation: %s\n", profile.Affiliation)
	fmt.Printf("Phone:       %s\n", profile.PhoneNumber)
	fmt.Printf("Gender:      %s\n", profile.Gender)
	fmt.Printf("Region:      %s\n", profile.Region)
	fmt.Printf("Joined:      %s\n", profile.JoinedAt.Format("2006-01-02"))
	return nil
}

type ProfileEditCmd struct{}

func (c *ProfileEditCmd) Run(ctx *Context) error {
	profile, err := ctx.Store.GetProfile()
	if errors.Is(err, storage.ErrNoProfile) {
		return fmt.Errorf("no profile yet; run 'newlife profile signup' first")
	}
	if err != nil {
		return err
	}

	form := profileForm(&profile, false)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	// Identity and join date never change through edit.
	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}

type ProfileLoginCmd struct {
	UserID   string `arg:"" help:"User id."`
	Password string `arg:"" help:"Password."`
}

// Run compares the given credentials against the single stored profile.
// This mirrors the original application's cosmetic login screen; it is not
// an authentication system and guards nothing.
func (c *ProfileLoginCmd) Run(ctx *Context) error {
	profile, err := ctx.Store.GetProfile()
	if errors.Is(err, storage.ErrNoProfile) {
		return fmt.Errorf("no profile yet; run 'newlife profile signup' first")
	}
	if err != nil {
		return err
	}

	if profile.UserID != c.UserID || profile.Password != c.Password {
		return fmt.Errorf("user id or password does not match")
	}

	profile.LastLoginIP = "127.0.0.1"
	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}

	logger.Info("Login succeeded", "userId", profile.UserID)
	fmt.Printf("Welcome back, %s!\n", profile.Name)
	return nil
}

func profileForm(p *models.UserProfile, withCredentials bool) *huh.Form {
	regionOptions := make([]huh.Option[models.Region], 0, len(models.Regions))
	for _, r := range models.Regions {
		regionOptions = append(regionOptions, huh.NewOption(string(r), r))
	}

	fields := []huh.Field{}
	if withCredentials {
		fields = append(fields,
			huh.NewInput().Title("User id").Value(&p.UserID),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(&p.Password),
		)
	}
	fields = append(fields,
		huh.NewInput().Title("Name").Value(&p.Name),
		huh.NewInput().Title("Age").Value(&p.Age),
		huh.NewInput().Title("Affiliation").Value(&p.Affiliation),
		huh.NewInput().Title("Phone number").Value(&p.PhoneNumber),
		huh.NewSelect[models.Gender]().
			Title("Gender").
			Options(
				huh.NewOption("남성", models.GenderMale),
				huh.NewOption("여성", models.GenderFemale),
			).
			Value(&p.Gender),
		huh.NewSelect[models.Region]().
			Title("Region").
			Options(regionOptions...).
			Value(&p.Region),
	)

	return huh.NewForm(huh.NewGroup(fields...))
}
