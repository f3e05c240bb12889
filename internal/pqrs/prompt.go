package pqrs

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tlogic-co/pqrs-service/internal/llm"
	"github.com/tlogic-co/pqrs-service/internal/synth"
)

// Default sampling parameters for reply generation.
const (
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
	DefaultMaxTokens   = 3000
)

const systemPrompt = `Eres un representante experto del servicio al cliente de una empresa de gestión del agua y servicios ambientales. Tu rol es generar respuestas profesionales, empáticas y completas a las PQRS de los usuarios.

Debes mantener un tono profesional pero cercano, demostrar conocimiento técnico cuando sea necesario y siempre expresar el compromiso de la empresa con la calidad del servicio y el cuidado del medio ambiente.`

const userPromptTemplate = `Genera una respuesta formal y completa para la siguiente %s:

Radicado: %s
Fecha: %s

Datos del usuario:
- Nombre: %s
- Cédula: %s
- Contrato: %s
- Dirección: %s
- Estrato: %d
- Tipo de usuario: %s

Contexto de la %s:
%s

La respuesta debe:
1. Iniciar con un saludo cordial y acuse de recibo
2. Abordar específicamente todos los puntos planteados
3. Proporcionar información técnica cuando sea relevante
4. Mencionar el marco legal aplicable (Ley 142 de 1994, Resoluciones CRA)
5. Detallar los pasos a seguir y el tiempo de respuesta de %d días hábiles
6. Incluir información de contacto y canales de atención
7. Cerrar con un mensaje de compromiso con el servicio
8. Mantener un formato de carta formal pero con lenguaje claro y cercano

Genera la respuesta completa sin usar títulos ni numeraciones, manteniendo un flujo natural.`

// ContextFor builds the category-specific narrative context embedded in
// the generation prompt. One fixed template per category, each
// selecting the record fields that matter for that kind of case.
func ContextFor(c Category, rec *synth.CustomerRecord) string {
	switch c {
	case Peticion:
		return fmt.Sprintf("El usuario solicita información detallada sobre su cuenta de servicios con número de contrato %s. "+
			"Requiere conocer el histórico de consumos de los últimos 6 meses, las tarifas aplicadas según su estrato %d, "+
			"y aclaración sobre los componentes de la factura. También solicita información sobre programas de ahorro de agua disponibles.",
			rec.ContractNumber, rec.Stratum)
	case Queja:
		return fmt.Sprintf("El usuario presenta una queja formal por la atención recibida durante la visita técnica realizada el %s "+
			"en su predio ubicado en %s. El técnico no siguió los protocolos de servicio, no presentó identificación "+
			"y dejó el área de trabajo en desorden. Solicita medidas correctivas y una nueva visita técnica.",
			rec.LastReadingDate, rec.Address)
	case Reclamo:
		return fmt.Sprintf("El usuario presenta un reclamo por el alto consumo facturado en el último periodo. El consumo registrado de %d m³ "+
			"es significativamente mayor al promedio histórico de %s m³. El valor facturado de $%s "+
			"no corresponde con el patrón de consumo habitual. Solicita revisión técnica del medidor %s y ajuste en la factura.",
			rec.CurrentConsumption, formatAverage(rec.AverageConsumption), formatThousands(rec.BilledAmount), rec.MeterID)
	case Sugerencia:
		return fmt.Sprintf("El usuario, cliente desde %s, sugiere implementar mejoras en el sistema de notificación de lecturas "+
			"y en la aplicación móvil. Propone incluir alertas de consumo inusual, gráficas comparativas mensuales y la opción de programar "+
			"visitas técnicas directamente desde la app. También sugiere implementar un sistema de puntos por ahorro de agua.",
			rec.InstallationDate)
	}
	return ""
}

// BuildMessages assembles the system and user instructions for the
// text-generation provider.
func BuildMessages(c Category, rec *synth.CustomerRecord, caseID string, now time.Time) []llm.Message {
	user := fmt.Sprintf(userPromptTemplate,
		c.Label(),
		caseID,
		FormatLongDate(now),
		rec.FullName,
		rec.NationalID,
		rec.ContractNumber,
		rec.Address,
		rec.Stratum,
		rec.CustomerType,
		c.Label(),
		ContextFor(c, rec),
		c.ResponseDays(),
	)
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: user},
	}
}

// formatAverage prints the 1-decimal consumption average without a
// trailing ".0" ambiguity (23.5 -> "23.5", 24.0 -> "24").
func formatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatThousands renders an amount with comma thousand separators.
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
