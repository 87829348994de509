// ganadero es la interfaz de línea de comandos del sistema de registros
// ganaderos: maneja la sesión, el CRUD de ejemplares, las sesiones de
// calificación morfológica, los sensores y el tablero.
//
// La URL del backend se toma de API_URL (default http://localhost:8080).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"livestock-records/internal/client"
	"livestock-records/internal/domain/scoring"
	"livestock-records/internal/forms"
	"livestock-records/internal/imaging"
	"livestock-records/internal/notify"
	"livestock-records/internal/session"
	"livestock-records/internal/store"
)

const usage = `uso: ganadero <comando> [flags]

Sesión:
  register   -user -email -pass        crear cuenta
  login      -user -pass               iniciar sesión
  logout                               cerrar sesión

Ejemplares:
  animals list
  animals add    -id -nombre -raza -nacimiento [-peso] [-talla] [-foto]
  animals edit   <animal-id> [-id] [-nombre] [-raza] [-nacimiento] [-peso] [-talla] [-foto]
  animals rm     <animal-id>

Calificación:
  template   -raza                     ver la rúbrica de una raza
  score      <animal-id> carac=valor [carac=valor ...]

Sensores:
  sensors    <animal-id>               lecturas de las últimas 24h
  alerts     <animal-id> [-read id]    alertas del ejemplar

Tablero:
  dashboard
`

type app struct {
	store  *store.Store
	api    *client.Client
	center *notify.Center
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	sess, err := session.New()
	if err != nil {
		fatal(err)
	}
	api, err := client.New(baseURL, sess)
	if err != nil {
		fatal(err)
	}

	a := &app{
		store:  store.New(api),
		api:    api,
		center: notify.NewCenter(),
	}

	ctx := context.Background()
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "register":
		err = a.register(ctx, args)
	case "login":
		err = a.login(ctx, args)
	case "logout":
		err = a.logout()
	case "animals":
		err = a.animals(ctx, args)
	case "template":
		err = a.template(ctx, args)
	case "score":
		err = a.score(ctx, args)
	case "sensors":
		err = a.sensors(ctx, args)
	case "alerts":
		err = a.alerts(ctx, args)
	case "dashboard":
		err = a.dashboard(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	a.flush()
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Unauthorized() {
		fmt.Fprintln(os.Stderr, "error: sesión expirada o inválida, volvé a hacer login")
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// flush imprime las notificaciones acumuladas por las operaciones.
func (a *app) flush() {
	for _, n := range a.center.Drain() {
		fmt.Printf("[%s] %s\n", n.Severity, n.Message)
	}
}

// --- Sesión ---

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	user := fs.String("user", "", "nombre de usuario")
	email := fs.String("email", "", "email (opcional)")
	pass := fs.String("pass", "", "contraseña (mínimo 8 caracteres)")
	_ = fs.Parse(args)

	if _, err := a.api.Register(ctx, *user, *email, *pass); err != nil {
		return err
	}
	a.center.Successf("Cuenta creada. Ahora podés hacer login.")
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	user := fs.String("user", "", "nombre de usuario")
	pass := fs.String("pass", "", "contraseña")
	_ = fs.Parse(args)

	if err := a.api.Login(ctx, *user, *pass); err != nil {
		return err
	}
	a.center.Successf("Sesión iniciada como " + *user + ".")
	return nil
}

func (a *app) logout() error {
	if err := a.api.Logout(); err != nil {
		return err
	}
	a.store.Reset()
	a.center.Infof("Sesión cerrada.")
	return nil
}

// --- Ejemplares ---

func (a *app) animals(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("animals: falta subcomando (list|add|edit|rm)")
	}

	switch args[0] {
	case "list":
		return a.animalsList(ctx)
	case "add":
		return a.animalsAdd(ctx, args[1:])
	case "edit":
		return a.animalsEdit(ctx, args[1:])
	case "rm":
		return a.animalsRm(ctx, args[1:])
	default:
		return fmt.Errorf("animals: subcomando desconocido %q", args[0])
	}
}

func (a *app) animalsList(ctx context.Context) error {
	if err := a.store.FetchAnimals(ctx); err != nil {
		return err
	}
	if err := a.store.FetchBreeds(ctx); err != nil {
		return err
	}

	items := a.store.Animals.Items()
	if len(items) == 0 {
		fmt.Println("Sin ejemplares registrados.")
		return nil
	}

	fmt.Printf("%-38s %-12s %-15s %-12s %-8s\n", "ID", "IDENTIF.", "NOMBRE", "RAZA", "SCORE")
	for _, it := range items {
		score := "-"
		if it.ScoreTotal != nil {
			score = fmt.Sprintf("%.2f", *it.ScoreTotal)
		}
		fmt.Printf("%-38s %-12s %-15s %-12s %-8s\n",
			it.ID, it.Identificador, it.Nombre, a.store.BreedName(it.Raza), score)
	}
	return nil
}

func animalFlags(fs *flag.FlagSet) *forms.AnimalInput {
	in := &forms.AnimalInput{}
	fs.StringVar(&in.Identificador, "id", "", "identificador de arete")
	fs.StringVar(&in.Nombre, "nombre", "", "nombre del ejemplar")
	fs.StringVar(&in.Raza, "raza", "", "id de la raza")
	fs.StringVar(&in.FechaNacimiento, "nacimiento", "", "fecha de nacimiento YYYY-MM-DD")
	fs.StringVar(&in.PesoActual, "peso", "", "peso actual en kg")
	fs.StringVar(&in.TallaActual, "talla", "", "talla actual en m")
	return in
}

func buildForm(vals forms.AnimalValues, fotoPath string) (client.AnimalForm, error) {
	form := client.AnimalForm{
		Identificador:   vals.Identificador,
		Nombre:          vals.Nombre,
		Raza:            vals.Raza,
		FechaNacimiento: vals.FechaNacimiento,
		PesoActual:      vals.PesoActual,
		TallaActual:     vals.TallaActual,
	}
	if fotoPath != "" {
		data, err := os.ReadFile(fotoPath)
		if err != nil {
			return client.AnimalForm{}, fmt.Errorf("leyendo foto: %w", err)
		}
		// Validar antes de subir: mismo límite y tipos que el backend.
		if _, err := imaging.Validate(data); err != nil {
			return client.AnimalForm{}, fmt.Errorf("foto: %w", err)
		}
		form.FotoName = fotoPath
		form.FotoData = data
	}
	return form, nil
}

func (a *app) animalsAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("animals add", flag.ExitOnError)
	in := animalFlags(fs)
	foto := fs.String("foto", "", "ruta a la foto (jpeg/png/gif)")
	_ = fs.Parse(args)

	vals, errs := forms.ValidateAnimal(*in, time.Now())
	if len(errs) > 0 {
		return errs
	}

	form, err := buildForm(vals, *foto)
	if err != nil {
		return err
	}

	created, err := a.store.CreateAnimal(ctx, form)
	if err != nil {
		return err
	}
	a.center.Successf("Ejemplar " + created.Identificador + " registrado (id " + created.ID + ").")
	return nil
}

func (a *app) animalsEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("animals edit: falta el id del ejemplar")
	}
	animalID := args[0]

	fs := flag.NewFlagSet("animals edit", flag.ExitOnError)
	in := animalFlags(fs)
	foto := fs.String("foto", "", "ruta a una foto nueva")
	_ = fs.Parse(args[1:])

	// Para edición los campos son opcionales: solo se validan los que vienen.
	current, err := a.api.GetAnimal(ctx, animalID)
	if err != nil {
		return err
	}
	if in.Identificador == "" {
		in.Identificador = current.Identificador
	}
	if in.Raza == "" {
		in.Raza = strconv.Itoa(current.Raza)
	}
	if in.FechaNacimiento == "" {
		in.FechaNacimiento = current.FechaNac
	}

	vals, errs := forms.ValidateAnimal(*in, time.Now())
	if len(errs) > 0 {
		return errs
	}

	form, err := buildForm(vals, *foto)
	if err != nil {
		return err
	}

	updated, err := a.store.UpdateAnimal(ctx, animalID, form)
	if err != nil {
		return err
	}
	a.center.Successf("Ejemplar " + updated.Identificador + " actualizado.")
	return nil
}

func (a *app) animalsRm(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("animals rm: falta el id del ejemplar")
	}
	if err := a.store.DeleteAnimal(ctx, args[0]); err != nil {
		return err
	}
	a.center.Successf("Ejemplar eliminado.")
	return nil
}

// --- Calificación ---

func (a *app) template(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("template", flag.ExitOnError)
	raza := fs.Int("raza", 0, "id de la raza")
	_ = fs.Parse(args)
	if *raza <= 0 {
		return errors.New("template: falta -raza")
	}

	tpl, err := a.store.Template(ctx, *raza)
	if err != nil {
		return err
	}

	idx, err := scoring.BuildIndex(tpl)
	if err != nil {
		return err
	}

	for _, c := range tpl.Categories {
		fmt.Printf("%s (%d%%)\n", c.Nombre, c.Ponderacion)
		for _, ch := range idx.Characteristics(c.ID) {
			fmt.Printf("  [%d] %-30s ideal=%.1f rango=%.1f-%.1f\n",
				ch.ID, ch.Nombre, ch.PuntajeIdeal, ch.RangoAceptadoMin, ch.RangoAceptadoMax)
		}
	}
	return nil
}

func (a *app) score(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("score: uso: score <animal-id> carac=valor [carac=valor ...]")
	}
	animalID := args[0]

	animal, err := a.api.GetAnimal(ctx, animalID)
	if err != nil {
		return err
	}
	tpl, err := a.store.Template(ctx, animal.Raza)
	if err != nil {
		return err
	}

	idx, err := scoring.BuildIndex(tpl)
	if err != nil {
		return err
	}

	// Parsear y validar cada carac=valor contra la rúbrica.
	entries := scoring.Entries{}
	for _, arg := range args[1:] {
		id, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("score: %q no tiene forma carac=valor", arg)
		}
		chID, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return fmt.Errorf("score: %q no es un id de característica", id)
		}
		ch, found := idx.Characteristic(chID)
		if !found {
			return fmt.Errorf("score: la característica %d no está en la rúbrica de %s", chID, a.store.BreedName(animal.Raza))
		}

		v, err := scoring.ValidateEntry(ch, raw)
		if err != nil {
			return fmt.Errorf("score: característica %d: %w", chID, err)
		}
		if v.OutOfRange {
			a.center.Infof(fmt.Sprintf("Característica %d: %.1f está fuera del rango aceptado (%.1f-%.1f).",
				chID, v.Value, ch.RangoAceptadoMin, ch.RangoAceptadoMax))
		}
		entries[chID] = v.Value
	}

	// Adelanto local del puntaje antes de confirmar con el backend.
	if missing := scoring.Completeness(tpl, entries); len(missing) > 0 {
		a.center.Infof(fmt.Sprintf("%d características sin calificar cuentan como 0.", len(missing)))
	}
	fmt.Printf("Puntaje final estimado: %.2f\n", scoring.ComputeFinalScore(tpl, entries))

	res, err := a.store.SubmitScores(ctx, animalID, tpl.Items(entries))
	if err != nil {
		return err
	}
	a.center.Successf(res.Message)
	fmt.Printf("score_total: %.2f\n", res.ScoreTotal)
	return nil
}

// --- Sensores ---

func (a *app) sensors(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("sensors: falta el id del ejemplar")
	}
	if err := a.store.FetchSensorData(ctx, args[0]); err != nil {
		return err
	}

	items := a.store.Readings.Items()
	if len(items) == 0 {
		fmt.Println("Sin lecturas en las últimas 24 horas.")
		return nil
	}
	for _, r := range items {
		temp, act := "-", "-"
		if r.Temperatura != nil {
			temp = fmt.Sprintf("%.1f°C", *r.Temperatura)
		}
		if r.Actividad != nil {
			act = fmt.Sprintf("%.0f", *r.Actividad)
		}
		fmt.Printf("%s  temp=%s actividad=%s\n", r.Timestamp.Format(time.RFC3339), temp, act)
	}
	return nil
}

func (a *app) alerts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("alerts: falta el id del ejemplar")
	}
	animalID := args[0]

	fs := flag.NewFlagSet("alerts", flag.ExitOnError)
	markRead := fs.String("read", "", "id de alerta a marcar como leída")
	_ = fs.Parse(args[1:])

	if *markRead != "" {
		if err := a.store.MarkAlertRead(ctx, *markRead); err != nil {
			return err
		}
		a.center.Successf("Alerta marcada como leída.")
	}

	if err := a.store.FetchAlerts(ctx, animalID); err != nil {
		return err
	}

	items := a.store.Alerts.Items()
	if len(items) == 0 {
		fmt.Println("Sin alertas.")
		return nil
	}
	for _, al := range items {
		mark := " "
		if !al.IsRead {
			mark = "*"
		}
		fmt.Printf("%s %-12s %s  %s  (%s)\n", mark, al.Type, al.Timestamp.Format("2006-01-02 15:04"), al.Message, al.ID)
	}
	if n := a.store.UnreadCount(); n > 0 {
		fmt.Printf("%d sin leer\n", n)
	}
	return nil
}

// --- Tablero ---

func (a *app) dashboard(ctx context.Context) error {
	data, err := a.store.Dashboard(ctx)
	if err != nil {
		return err
	}

	fmt.Println("Promedio por raza:")
	if len(data.AverageScoresByBreed) == 0 {
		fmt.Println("  (sin ejemplares calificados)")
	}
	for _, b := range data.AverageScoresByBreed {
		fmt.Printf("  %-15s %.2f\n", b.BreedName, b.AverageScore)
	}

	fmt.Println("Calificados recientemente:")
	for _, r := range data.RecentScores {
		fmt.Printf("  %-12s %-15s %-12s %.2f  %s\n",
			r.Identificador, r.Nombre, r.BreedName, r.ScoreTotal, r.LastScoreDate)
	}
	return nil
}
