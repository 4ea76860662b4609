package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/model/visit"
)

// Timing specifies an event that may occur multiple times.
type Timing struct {
	backboneElement
	event  []*DateTime
	repeat *TimingRepeat
	code   *CodeableConcept
}

func (r *Timing) TypeName() string {
	return "Timing"
}

// Event returns the specific times when the event occurs.
func (r *Timing) Event() []*DateTime {
	return cloneList(r.event)
}

func (r *Timing) Repeat() *TimingRepeat {
	return r.repeat
}

// Code is a code for the timing schedule (e.g. BID).
func (r *Timing) Code() *CodeableConcept {
	return r.code
}

func (r *Timing) HasChildren() bool {
	return r.hasBaseChildren() ||
		len(r.event) > 0 ||
		r.repeat != nil ||
		r.code != nil
}

func (r *Timing) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		model.AcceptList(v, "event", "dateTime", r.event)
		if r.repeat != nil {
			r.repeat.Accept("repeat", -1, v)
		}
		if r.code != nil {
			r.code.Accept("code", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *Timing) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *Timing) ToBuilder() *TimingBuilder {
	b := NewTimingBuilder()
	b.initBase(&r.backboneElement)
	b.event = cloneList(r.event)
	b.repeat = r.repeat
	b.code = r.code
	return b
}

// TimingBuilder builds [Timing] nodes.
type TimingBuilder struct {
	backboneElementBuilder[TimingBuilder]
	event  []*DateTime
	repeat *TimingRepeat
	code   *CodeableConcept
}

func NewTimingBuilder() *TimingBuilder {
	b := &TimingBuilder{}
	b.self = b
	return b
}

func (b *TimingBuilder) Event(v ...*DateTime) *TimingBuilder {
	b.event = append(b.event, v...)
	return b
}

func (b *TimingBuilder) SetEvent(v []*DateTime) *TimingBuilder {
	b.event = cloneList(v)
	return b
}

func (b *TimingBuilder) Repeat(v *TimingRepeat) *TimingBuilder {
	b.repeat = v
	return b
}

func (b *TimingBuilder) Code(v *CodeableConcept) *TimingBuilder {
	b.code = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *TimingBuilder) Build() (*Timing, error) {
	base, errs := b.buildBase()
	errs = append(errs,
		validation.RequireNoNilElements(b.event, "event"),
	)
	r := &Timing{
		backboneElement: base,
		event:           cloneList(b.event),
		repeat:          b.repeat,
		code:            b.code,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Timing", errs...); err != nil {
		return nil, err
	}
	return r, nil
}

// TimingRepeat is a set of rules that describe when the event is scheduled.
type TimingRepeat struct {
	backboneElement
	bounds       TimingRepeatBounds
	count        *PositiveInt
	countMax     *PositiveInt
	duration     *Decimal
	durationMax  *Decimal
	durationUnit *Coded[UnitsOfTime]
	frequency    *PositiveInt
	frequencyMax *PositiveInt
	period       *Decimal
	periodMax    *Decimal
	periodUnit   *Coded[UnitsOfTime]
	dayOfWeek    []*Coded[DaysOfWeek]
	timeOfDay    []*Time
	when         []*Coded[EventTiming]
	offset       *UnsignedInt
}

// TimingRepeatBounds is the type of Timing.repeat.bounds[x]: one of Duration, Range, Period.
type TimingRepeatBounds interface {
	model.Element
	isTimingRepeatBounds()
}

func (r *Duration) isTimingRepeatBounds() {}
func (r *Range) isTimingRepeatBounds()    {}
func (r *Period) isTimingRepeatBounds()   {}

func (r *TimingRepeat) TypeName() string {
	return "Timing.repeat"
}

// Bounds is the length or range of lengths, or start and/or end limits.
func (r *TimingRepeat) Bounds() TimingRepeatBounds {
	return r.bounds
}

func (r *TimingRepeat) Count() *PositiveInt {
	return r.count
}

func (r *TimingRepeat) CountMax() *PositiveInt {
	return r.countMax
}

func (r *TimingRepeat) Duration() *Decimal {
	return r.duration
}

func (r *TimingRepeat) DurationMax() *Decimal {
	return r.durationMax
}

func (r *TimingRepeat) DurationUnit() *Coded[UnitsOfTime] {
	return r.durationUnit
}

// Frequency is how often the event occurs per period.
func (r *TimingRepeat) Frequency() *PositiveInt {
	return r.frequency
}

func (r *TimingRepeat) FrequencyMax() *PositiveInt {
	return r.frequencyMax
}

func (r *TimingRepeat) Period() *Decimal {
	return r.period
}

func (r *TimingRepeat) PeriodMax() *Decimal {
	return r.periodMax
}

func (r *TimingRepeat) PeriodUnit() *Coded[UnitsOfTime] {
	return r.periodUnit
}

func (r *TimingRepeat) DayOfWeek() []*Coded[DaysOfWeek] {
	return cloneList(r.dayOfWeek)
}

func (r *TimingRepeat) TimeOfDay() []*Time {
	return cloneList(r.timeOfDay)
}

func (r *TimingRepeat) When() []*Coded[EventTiming] {
	return cloneList(r.when)
}

// Offset returns the minutes from the event.
func (r *TimingRepeat) Offset() *UnsignedInt {
	return r.offset
}

func (r *TimingRepeat) HasChildren() bool {
	return r.hasBaseChildren() ||
		r.bounds != nil ||
		r.count != nil ||
		r.countMax != nil ||
		r.duration != nil ||
		r.durationMax != nil ||
		r.durationUnit != nil ||
		r.frequency != nil ||
		r.frequencyMax != nil ||
		r.period != nil ||
		r.periodMax != nil ||
		r.periodUnit != nil ||
		len(r.dayOfWeek) > 0 ||
		len(r.timeOfDay) > 0 ||
		len(r.when) > 0 ||
		r.offset != nil
}

func (r *TimingRepeat) Accept(name string, index int, v model.Visitor) {
	if !v.PreVisit(r) {
		return
	}
	v.VisitStart(name, index, r)
	if v.Visit(name, index, r) {
		r.visitBase(v)
		model.AcceptChoice(v, "bounds", r.bounds)
		if r.count != nil {
			r.count.Accept("count", -1, v)
		}
		if r.countMax != nil {
			r.countMax.Accept("countMax", -1, v)
		}
		if r.duration != nil {
			r.duration.Accept("duration", -1, v)
		}
		if r.durationMax != nil {
			r.durationMax.Accept("durationMax", -1, v)
		}
		if r.durationUnit != nil {
			r.durationUnit.Accept("durationUnit", -1, v)
		}
		if r.frequency != nil {
			r.frequency.Accept("frequency", -1, v)
		}
		if r.frequencyMax != nil {
			r.frequencyMax.Accept("frequencyMax", -1, v)
		}
		if r.period != nil {
			r.period.Accept("period", -1, v)
		}
		if r.periodMax != nil {
			r.periodMax.Accept("periodMax", -1, v)
		}
		if r.periodUnit != nil {
			r.periodUnit.Accept("periodUnit", -1, v)
		}
		model.AcceptList(v, "dayOfWeek", "code", r.dayOfWeek)
		model.AcceptList(v, "timeOfDay", "time", r.timeOfDay)
		model.AcceptList(v, "when", "code", r.when)
		if r.offset != nil {
			r.offset.Accept("offset", -1, v)
		}
	}
	v.VisitEnd(name, index, r)
	v.PostVisit(r)
}

func (r *TimingRepeat) String() string {
	return visit.Sprint(r)
}

// ToBuilder returns a builder initialized with the contents of r.
func (r *TimingRepeat) ToBuilder() *TimingRepeatBuilder {
	b := NewTimingRepeatBuilder()
	b.initBase(&r.backboneElement)
	b.bounds = r.bounds
	b.count = r.count
	b.countMax = r.countMax
	b.duration = r.duration
	b.durationMax = r.durationMax
	b.durationUnit = r.durationUnit
	b.frequency = r.frequency
	b.frequencyMax = r.frequencyMax
	b.period = r.period
	b.periodMax = r.periodMax
	b.periodUnit = r.periodUnit
	b.dayOfWeek = cloneList(r.dayOfWeek)
	b.timeOfDay = cloneList(r.timeOfDay)
	b.when = cloneList(r.when)
	b.offset = r.offset
	return b
}

// TimingRepeatBuilder builds [TimingRepeat] nodes.
type TimingRepeatBuilder struct {
	backboneElementBuilder[TimingRepeatBuilder]
	bounds       model.Element
	count        *PositiveInt
	countMax     *PositiveInt
	duration     *Decimal
	durationMax  *Decimal
	durationUnit *Coded[UnitsOfTime]
	frequency    *PositiveInt
	frequencyMax *PositiveInt
	period       *Decimal
	periodMax    *Decimal
	periodUnit   *Coded[UnitsOfTime]
	dayOfWeek    []*Coded[DaysOfWeek]
	timeOfDay    []*Time
	when         []*Coded[EventTiming]
	offset       *UnsignedInt
}

func NewTimingRepeatBuilder() *TimingRepeatBuilder {
	b := &TimingRepeatBuilder{}
	b.self = b
	return b
}

func (b *TimingRepeatBuilder) Bounds(v TimingRepeatBounds) *TimingRepeatBuilder {
	b.bounds = v
	return b
}

// BoundsElement sets bounds without static type check, Build fails unless it is one of Duration, Range, Period.
func (b *TimingRepeatBuilder) BoundsElement(v model.Element) *TimingRepeatBuilder {
	b.bounds = v
	return b
}

func (b *TimingRepeatBuilder) Count(v *PositiveInt) *TimingRepeatBuilder {
	b.count = v
	return b
}

func (b *TimingRepeatBuilder) CountMax(v *PositiveInt) *TimingRepeatBuilder {
	b.countMax = v
	return b
}

func (b *TimingRepeatBuilder) Duration(v *Decimal) *TimingRepeatBuilder {
	b.duration = v
	return b
}

func (b *TimingRepeatBuilder) DurationMax(v *Decimal) *TimingRepeatBuilder {
	b.durationMax = v
	return b
}

func (b *TimingRepeatBuilder) DurationUnit(v *Coded[UnitsOfTime]) *TimingRepeatBuilder {
	b.durationUnit = v
	return b
}

func (b *TimingRepeatBuilder) Frequency(v *PositiveInt) *TimingRepeatBuilder {
	b.frequency = v
	return b
}

func (b *TimingRepeatBuilder) FrequencyMax(v *PositiveInt) *TimingRepeatBuilder {
	b.frequencyMax = v
	return b
}

func (b *TimingRepeatBuilder) Period(v *Decimal) *TimingRepeatBuilder {
	b.period = v
	return b
}

func (b *TimingRepeatBuilder) PeriodMax(v *Decimal) *TimingRepeatBuilder {
	b.periodMax = v
	return b
}

func (b *TimingRepeatBuilder) PeriodUnit(v *Coded[UnitsOfTime]) *TimingRepeatBuilder {
	b.periodUnit = v
	return b
}

func (b *TimingRepeatBuilder) DayOfWeek(v ...*Coded[DaysOfWeek]) *TimingRepeatBuilder {
	b.dayOfWeek = append(b.dayOfWeek, v...)
	return b
}

func (b *TimingRepeatBuilder) SetDayOfWeek(v []*Coded[DaysOfWeek]) *TimingRepeatBuilder {
	b.dayOfWeek = cloneList(v)
	return b
}

func (b *TimingRepeatBuilder) TimeOfDay(v ...*Time) *TimingRepeatBuilder {
	b.timeOfDay = append(b.timeOfDay, v...)
	return b
}

func (b *TimingRepeatBuilder) SetTimeOfDay(v []*Time) *TimingRepeatBuilder {
	b.timeOfDay = cloneList(v)
	return b
}

func (b *TimingRepeatBuilder) When(v ...*Coded[EventTiming]) *TimingRepeatBuilder {
	b.when = append(b.when, v...)
	return b
}

func (b *TimingRepeatBuilder) SetWhen(v []*Coded[EventTiming]) *TimingRepeatBuilder {
	b.when = cloneList(v)
	return b
}

func (b *TimingRepeatBuilder) Offset(v *UnsignedInt) *TimingRepeatBuilder {
	b.offset = v
	return b
}

// Build validates the builder contents and returns the node.
func (b *TimingRepeatBuilder) Build() (*TimingRepeat, error) {
	base, errs := b.buildBase()
	bounds, err := validation.ChoiceElement[TimingRepeatBounds](b.bounds, "bounds", "Duration", "Range", "Period")
	errs = append(errs, err)
	errs = append(errs,
		validation.RequireNoNilElements(b.dayOfWeek, "dayOfWeek"),
		validation.RequireNoNilElements(b.timeOfDay, "timeOfDay"),
		validation.RequireNoNilElements(b.when, "when"),
	)
	r := &TimingRepeat{
		backboneElement: base,
		bounds:          bounds,
		count:           b.count,
		countMax:        b.countMax,
		duration:        b.duration,
		durationMax:     b.durationMax,
		durationUnit:    b.durationUnit,
		frequency:       b.frequency,
		frequencyMax:    b.frequencyMax,
		period:          b.period,
		periodMax:       b.periodMax,
		periodUnit:      b.periodUnit,
		dayOfWeek:       cloneList(b.dayOfWeek),
		timeOfDay:       cloneList(b.timeOfDay),
		when:            cloneList(b.when),
		offset:          b.offset,
	}
	errs = append(errs, validation.RequireValueOrChildren(r))
	if err := validation.Join("Timing.repeat", errs...); err != nil {
		return nil, err
	}
	return r, nil
}
